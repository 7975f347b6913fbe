package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidInput = errors.New("invalid input")

// Service contains identity-store business logic. New accounts start with the
// configured default password; only an admin-driven reset changes it back.
type Service struct {
	Repo            Repo
	DefaultPassword string
}

func NewService(repo Repo, defaultPassword string) *Service {
	return &Service{Repo: repo, DefaultPassword: defaultPassword}
}

// Create registers a new account with the given role and the default password.
func (s *Service) Create(ctx context.Context, username, email, role string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return User{}, ErrInvalidInput
	}
	if role == "" {
		role = RoleUser
	}
	if !ValidRole(role) {
		return User{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	return s.Repo.Create(ctx, User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		UUID:         uuid.NewString(),
		Role:         role,
		IsLocked:     false,
		CreatedOn:    time.Now().UTC(),
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.Repo.GetByEmail(ctx, strings.TrimSpace(email))
}

// List returns all users, or only those with the given role.
func (s *Service) List(ctx context.Context, role string) ([]User, error) {
	if role != "" {
		return s.Repo.ListByRole(ctx, role)
	}
	return s.Repo.ListAll(ctx)
}

// ToggleLock flips the account lock flag and returns the updated user.
func (s *Service) ToggleLock(ctx context.Context, id int64) (User, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	user.IsLocked = !user.IsLocked
	if err := s.Repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// ResetPassword replaces the stored hash with a hash of the default password.
func (s *Service) ResetPassword(ctx context.Context, id int64) error {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.Repo.Update(ctx, user)
}

// RecordLogin stamps last_login_on for a successful authentication.
func (s *Service) RecordLogin(ctx context.Context, id int64) error {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	user.LastLoginOn = &now
	return s.Repo.Update(ctx, user)
}

// Stats summarizes account counts for the admin dashboard.
type Stats struct {
	TotalUsers int64 `json:"totalUsers"`
	Recruiters int64 `json:"recruiters"`
	Candidates int64 `json:"candidates"`
}

func (s *Service) DashboardStats(ctx context.Context) (Stats, error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	recruiters, err := s.Repo.ListByRole(ctx, RoleRecruiter)
	if err != nil {
		return Stats{}, err
	}
	candidates, err := s.Repo.ListByRole(ctx, RoleCandidate)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		TotalUsers: total,
		Recruiters: int64(len(recruiters)),
		Candidates: int64(len(candidates)),
	}, nil
}
