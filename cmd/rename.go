package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id> <name>...",
	Short: "Rename a task",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		task, err := store.Update(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}

		fmt.Printf("Renamed %s to %q\n", task.ID, task.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
