package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/elermun/daybook/internal/models"
	"github.com/elermun/daybook/internal/period"
)

var (
	idStyle       = lipgloss.NewStyle().Faint(true)
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	bucketHeading = lipgloss.NewStyle().Bold(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally filtered by day and period",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var dayFilter *time.Time
		var periodFilter *period.Period

		if raw, _ := cmd.Flags().GetString("day"); raw != "" {
			parsed, err := time.Parse(dayFlagLayout, raw)
			if err != nil {
				return fmt.Errorf("invalid --day %q: want YYYY-MM-DD", raw)
			}
			dayFilter = &parsed
		}
		if cmd.Flags().Changed("period") {
			raw, _ := cmd.Flags().GetString("period")
			p, err := period.Parse(raw)
			if err != nil {
				return err
			}
			periodFilter = &p
		}

		store, cleanup, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		tasks, err := store.List(cmd.Context(), dayFilter, periodFilter)
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks.")
			return nil
		}

		printTasks(tasks)
		return nil
	},
}

func printTasks(tasks []models.Task) {
	lastBucket := ""
	for _, task := range tasks {
		bucket := fmt.Sprintf("%s %s", task.Period, task.Date.Format(dayFlagLayout))
		if bucket != lastBucket {
			fmt.Println(bucketHeading.Render(bucket))
			lastBucket = bucket
		}

		box := "[ ]"
		name := task.Name
		if task.Complete {
			box = "[x]"
			name = doneStyle.Render(name)
		}
		fmt.Printf("  %s %s %s\n", box, name, idStyle.Render(task.ID))
	}
}

func init() {
	addBucketFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}
