package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/app"
)

// runApp opens the store, builds the progression service, and launches
// the TUI.
func runApp(cmd *cobra.Command, startAssessment bool) error {
	svc, st, err := openService(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Service:         svc,
		StartAssessment: startAssessment,
	})
}

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a full skill assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}
