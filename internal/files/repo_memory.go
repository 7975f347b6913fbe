package files

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo used in dev and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]StoredFile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, data: make(map[int64]StoredFile)}
}

func (r *MemoryRepo) Create(ctx context.Context, file StoredFile) (StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return StoredFile{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	file.ID = r.nextID
	r.nextID++
	r.data[file.ID] = file
	return file, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return StoredFile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	file, ok := r.data[id]
	if !ok {
		return StoredFile{}, ErrNotFound
	}
	return file, nil
}
