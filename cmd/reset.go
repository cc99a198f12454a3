package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all sessions and reset every skill to level 1",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("This erases all session history and resets every skill to level 1.\nType RESET to confirm: ")

		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) != "RESET" {
			fmt.Println("Aborted.")
			return nil
		}

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := svc.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Println("All data reset.")
		return nil
	},
}
