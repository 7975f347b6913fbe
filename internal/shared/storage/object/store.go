package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary objects.
type ObjectStore interface {
	Save(ctx context.Context, owner string, fileName string, r io.Reader) (storedName string, sizeBytes int64, err error)
	Open(ctx context.Context, storedName string) (io.ReadCloser, error)
}
