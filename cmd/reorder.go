package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Reorder a bucket's tasks to the given id sequence",
	Long: `Reorder assigns display order within one bucket. Every id must
belong to the targeted bucket; ids left out keep their old sortOrder
values, so normally the full bucket is listed.`,
	Args: cobra.MinimumNArgs(1),
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

		if err := store.UpdateOrder(cmd.Context(), day, p, args); err != nil {
			return err
		}

		fmt.Printf("Reordered %d tasks in the %s bucket for %s\n", len(args), p, day.Format(dayFlagLayout))
		return nil
	},
}

func init() {
	addBucketFlags(reorderCmd)
	rootCmd.AddCommand(reorderCmd)
}
