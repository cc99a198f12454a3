package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/progression"
	"github.com/abhisek/levelup/internal/store"
	"github.com/abhisek/levelup/internal/taxonomy"
)

var rootCmd = &cobra.Command{
	Use:   "levelup",
	Short: "Personal skill progression tracker",
	Long:  "Levelup — terminal app for tracking skill levels across life, career, and finance with session-based progress updates.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEVELUP_DB env var)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEVELUP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openService opens the store and builds the progression service. The
// caller owns the returned store and must Close it.
func openService(cmd *cobra.Command) (*progression.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	tax := taxonomy.Default()
	st, err := store.Open(dbPath, tax)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return progression.NewService(tax, st.ProgressRepo()), st, nil
}
