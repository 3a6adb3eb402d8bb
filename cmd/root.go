// Package cmd wires the command-line surface onto the task store.
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/elermun/daybook/internal/config"
	"github.com/elermun/daybook/internal/database"
	"github.com/elermun/daybook/internal/logging"
	"github.com/elermun/daybook/internal/period"
	"github.com/elermun/daybook/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "Daybook - a period-bucketed personal planner",
	Long: `Daybook keeps one checklist per calendar bucket: a day, a week,
a month, or a year. Tasks live in exactly one bucket and the whole
store is snapshotted after every change.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

const dayFlagLayout = "2006-01-02"

// dayFlag and periodFlag are shared by every subcommand that targets a
// bucket.
func addBucketFlags(cmd *cobra.Command) {
	cmd.Flags().String("day", "", "bucket day in YYYY-MM-DD form (default today)")
	cmd.Flags().String("period", "days", "bucket period: days, weeks, months or year")
}

func bucketFromFlags(cmd *cobra.Command) (time.Time, period.Period, error) {
	day := time.Now().UTC()
	if raw, _ := cmd.Flags().GetString("day"); raw != "" {
		parsed, err := time.Parse(dayFlagLayout, raw)
		if err != nil {
			return time.Time{}, "", fmt.Errorf("invalid --day %q: want YYYY-MM-DD", raw)
		}
		day = parsed
	}

	raw, _ := cmd.Flags().GetString("period")
	p, err := period.Parse(raw)
	if err != nil {
		return time.Time{}, "", err
	}
	return day, p, nil
}

// openStore builds the store from config, initializing logging and the
// slot store on the way. The returned cleanup closes the engine.
func openStore(ctx context.Context) (database.TaskRepository, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, nil, err
	}
	if err := logging.Init(dataDir); err != nil {
		return nil, nil, err
	}

	cal, err := cfg.Calendar()
	if err != nil {
		return nil, nil, err
	}

	slots, err := storage.NewSlotStore(dataDir)
	if err != nil {
		return nil, nil, err
	}

	store, err := database.Open(ctx, slots, cal)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}
