package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>...",
	Short: "Add a task to a bucket",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, p, err := bucketFromFlags(cmd)
		if err != nil {
			return err
		}

		store, cleanup, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		task, err := store.Create(cmd.Context(), strings.Join(args, " "), day, p)
		if err != nil {
			return err
		}

		fmt.Printf("Added %s (%s, %s)\n", task.ID, task.Period, task.Date.Format(dayFlagLayout))
		return nil
	},
}

func init() {
	addBucketFlags(addCmd)
	rootCmd.AddCommand(addCmd)
}
