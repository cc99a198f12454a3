package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/taxonomy"
	"github.com/abhisek/levelup/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print all skill levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := svc.Snapshot(cmd.Context())
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}

		headerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		warnStyle := lipgloss.NewStyle().Foreground(theme.Warning)

		fmt.Println(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("Overall Level %d", snap.OverallLevel)))
		fmt.Println()

		tax := svc.Taxonomy()
		for _, c := range tax.Categories() {
			fmt.Println(headerStyle.Render(fmt.Sprintf("%s — Level %d",
				taxonomy.CategoryDisplayName(c), snap.CategoryLevels[c])))
			for _, name := range tax.Skills(c) {
				k := taxonomy.Key{Category: c, Skill: name}
				fmt.Printf("  %-30s %s\n",
					taxonomy.DisplayName(name),
					dimStyle.Render(fmt.Sprintf("%3d", snap.Skills[k])))
			}
			fmt.Println()
		}

		for _, issue := range snap.Issues {
			fmt.Println(warnStyle.Render("warning: " + issue.String() + ", shown as 1"))
		}

		return nil
	},
}
