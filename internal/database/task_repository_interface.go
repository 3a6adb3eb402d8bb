package database

import (
	"context"
	"time"

	"github.com/elermun/daybook/internal/models"
	"github.com/elermun/daybook/internal/period"
)

// TaskReader defines read operations on the task store.
type TaskReader interface {
	List(ctx context.Context, day *time.Time, p *period.Period) ([]models.Task, error)
	Read(ctx context.Context, id string) (*models.Task, error)
	CheckExists(ctx context.Context, id string) (*models.Task, error)
}

// TaskWriter defines single-task mutations.
type TaskWriter interface {
	Create(ctx context.Context, name string, day time.Time, p period.Period) (*models.Task, error)
	Update(ctx context.Context, id, name string) (*models.Task, error)
	MarkComplete(ctx context.Context, id string) (*models.Task, error)
	MarkIncomplete(ctx context.Context, id string) (*models.Task, error)
	Delete(ctx context.Context, id string) error
}

// BucketWriter defines whole-bucket mutations.
type BucketWriter interface {
	CopyIncompletes(ctx context.Context, day time.Time, p period.Period) error
	ClearPeriod(ctx context.Context, day time.Time, p period.Period) error
	UpdateOrder(ctx context.Context, day time.Time, p period.Period, orderedIDs []string) error
}

// TaskRepository combines all task store operations. Consumers depend
// on this interface (or one of its parts) rather than the concrete
// store for better testability.
type TaskRepository interface {
	TaskReader
	TaskWriter
	BucketWriter
}

var _ TaskRepository = (*TaskStore)(nil)
