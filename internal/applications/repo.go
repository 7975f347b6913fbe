package applications

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("application not found")

// Repo defines persistence operations for applications.
type Repo interface {
	Create(ctx context.Context, app Application) (Application, error)
	GetByID(ctx context.Context, id int64) (Application, error)
	ListAll(ctx context.Context) ([]Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	ListByStatus(ctx context.Context, status string) ([]Application, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Application, error)
	Update(ctx context.Context, app Application) error
	CountByJob(ctx context.Context, jobID int64) (int, error)
}
