package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/store"
	"github.com/abhisek/levelup/internal/taxonomy"
	"github.com/abhisek/levelup/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recent progress sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		sessions, err := svc.History(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		gainStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)

		for _, sess := range sessions {
			kind := "update"
			if sess.Kind == store.KindAssessment {
				kind = "assessment"
			}
			line := fmt.Sprintf("%s  %-10s  %s",
				sess.Timestamp.Format("2006-01-02 15:04"),
				kind,
				gainStyle.Render(fmt.Sprintf("+%d", sess.TotalGain)))
			if sess.Note != "" {
				line += "  " + dimStyle.Render(sess.Note)
			}
			fmt.Println(line)

			for _, c := range sess.Changes {
				fmt.Println(dimStyle.Render(fmt.Sprintf("    %-30s %3d → %3d",
					taxonomy.DisplayName(c.Key.Skill), c.OldLevel, c.NewLevel)))
			}
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Maximum number of sessions to show")
}
