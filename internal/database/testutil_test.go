package database

import (
	"context"
	"testing"
	"time"

	"github.com/elermun/daybook/internal/models"
	"github.com/elermun/daybook/internal/period"
	"github.com/elermun/daybook/internal/storage"
)

// newTestStore opens a fresh store over a slot store rooted in a temp
// directory. The slot store is returned too so persistence tests can
// reopen from the same slot.
func newTestStore(t *testing.T) (*TaskStore, *storage.SlotStore) {
	t.Helper()
	slots, err := storage.NewSlotStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create slot store: %v", err)
	}

	store, err := Open(context.Background(), slots, period.Default)
	if err != nil {
		t.Fatalf("Failed to open task store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store, slots
}

// reopenStore simulates an app restart by closing the store and opening
// a new one from the same slot.
func reopenStore(t *testing.T, store *TaskStore, slots *storage.SlotStore) *TaskStore {
	t.Helper()
	if err := store.Close(); err != nil {
		t.Fatalf("Failed to close store: %v", err)
	}

	reopened, err := Open(context.Background(), slots, period.Default)
	if err != nil {
		t.Fatalf("Failed to reopen task store: %v", err)
	}
	t.Cleanup(func() {
		reopened.Close()
	})
	return reopened
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustCreate(t *testing.T, store *TaskStore, name string, on time.Time, p period.Period) *models.Task {
	t.Helper()
	task, err := store.Create(context.Background(), name, on, p)
	if err != nil {
		t.Fatalf("Failed to create task %q: %v", name, err)
	}
	return task
}

func mustList(t *testing.T, store *TaskStore, on time.Time, p period.Period) []models.Task {
	t.Helper()
	tasks, err := store.List(context.Background(), &on, &p)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	return tasks
}

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func sortOrders(tasks []models.Task) []int {
	orders := make([]int, 0, len(tasks))
	for _, task := range tasks {
		orders = append(orders, task.SortOrder)
	}
	return orders
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
