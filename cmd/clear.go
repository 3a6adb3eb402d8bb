package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every task in a bucket",
	Args:  cobra.NoArgs,
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

		if err := store.ClearPeriod(cmd.Context(), day, p); err != nil {
			return err
		}

		fmt.Printf("Cleared the %s bucket for %s\n", p, day.Format(dayFlagLayout))
		return nil
	},
}

func init() {
	addBucketFlags(clearCmd)
	rootCmd.AddCommand(clearCmd)
}
