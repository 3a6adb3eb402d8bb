package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark tasks complete",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		for _, id := range args {
			task, err := store.MarkComplete(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Done: %s\n", task.Name)
		}
		return nil
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo <id>...",
	Short: "Mark tasks incomplete again",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		for _, id := range args {
			task, err := store.MarkIncomplete(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Reopened: %s\n", task.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoCmd)
}
