package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var carryCmd = &cobra.Command{
	Use:   "carry",
	Short: "Copy unfinished tasks from the previous bucket into this one",
	Long: `Carry copies every incomplete task from the previous bucket of the
same period into the target bucket. Completed tasks stay behind, and
the copies start unchecked.`,
	Args: cobra.NoArgs,
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

		if err := store.CopyIncompletes(cmd.Context(), day, p); err != nil {
			return err
		}

		fmt.Printf("Carried unfinished %s tasks into %s\n", p, day.Format(dayFlagLayout))
		return nil
	},
}

func init() {
	addBucketFlags(carryCmd)
	rootCmd.AddCommand(carryCmd)
}
