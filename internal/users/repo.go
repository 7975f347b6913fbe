package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("user with this email already exists")
)

// Repo defines persistence operations for users.
type Repo interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListAll(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role string) ([]User, error)
	Update(ctx context.Context, user User) error
	Count(ctx context.Context) (int64, error)
}
