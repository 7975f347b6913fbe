package applications

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo used in dev and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]Application
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, data: make(map[int64]Application)}
}

func (r *MemoryRepo) Create(ctx context.Context, app Application) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	app.ID = r.nextID
	r.nextID++
	r.data[app.ID] = app
	return app, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.data[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

func (r *MemoryRepo) ListAll(ctx context.Context) ([]Application, error) {
	return r.list(ctx, func(Application) bool { return true })
}

func (r *MemoryRepo) ListByJob(ctx context.Context, jobID int64) ([]Application, error) {
	return r.list(ctx, func(app Application) bool { return app.JobID == jobID })
}

func (r *MemoryRepo) ListByStatus(ctx context.Context, status string) ([]Application, error) {
	return r.list(ctx, func(app Application) bool { return app.Status == status })
}

func (r *MemoryRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]Application, error) {
	return r.list(ctx, func(app Application) bool { return app.CandidateID == candidateID })
}

func (r *MemoryRepo) Update(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[app.ID]; !ok {
		return ErrNotFound
	}
	r.data[app.ID] = app
	return nil
}

func (r *MemoryRepo) CountByJob(ctx context.Context, jobID int64) (int, error) {
	apps, err := r.ListByJob(ctx, jobID)
	if err != nil {
		return 0, err
	}
	return len(apps), nil
}

func (r *MemoryRepo) list(ctx context.Context, keep func(Application) bool) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Application, 0, len(r.data))
	for _, app := range r.data {
		if keep(app) {
			out = append(out, app)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
