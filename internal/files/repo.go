package files

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("file not found")

// Repo defines persistence operations for the file registry.
type Repo interface {
	Create(ctx context.Context, file StoredFile) (StoredFile, error)
	GetByID(ctx context.Context, id int64) (StoredFile, error)
}
