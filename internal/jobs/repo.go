package jobs

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job not found")

// Repo defines persistence operations for job postings.
type Repo interface {
	Create(ctx context.Context, job Job) (Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	ListAll(ctx context.Context) ([]Job, error)
	ListActive(ctx context.Context) ([]Job, error)
	Update(ctx context.Context, job Job) error
}
