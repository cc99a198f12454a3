package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/legacy"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a v1 JSON snapshot file",
	Long:  "Import replays the sessions from a v1 skill_levels.json file into the database, then restores the recorded skill levels.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := legacy.Import(cmd.Context(), args[0], svc.Taxonomy(), st.ProgressRepo())
		if err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}

		fmt.Printf("Imported %d session(s) with %d change(s); restored %d skill level(s).\n",
			report.SessionsImported, report.ChangesImported, report.SkillsRestored)
		for _, skip := range report.Skipped {
			fmt.Println("  skipped:", skip)
		}
		return nil
	},
}
