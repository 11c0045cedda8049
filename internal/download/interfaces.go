package download

import (
	"context"

	"github.com/ytget/ytmp3/internal/api"
	"github.com/ytget/ytmp3/internal/model"
)

// StatusSource reports the current state of a job.
type StatusSource interface {
	Status(ctx context.Context, taskID string) (*model.StatusSnapshot, error)
}

// FileSource opens the result file of a completed job.
type FileSource interface {
	OpenFile(ctx context.Context, taskID string) (*api.File, error)
}

// UpdateFunc receives every snapshot fetched for the active job
type UpdateFunc func(taskID string, snap *model.StatusSnapshot)
