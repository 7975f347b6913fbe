package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	sharedauth "recruitment-backend/internal/shared/auth"
	"recruitment-backend/internal/users"
)

var (
	// ErrBadCredentials covers unknown emails and wrong passwords alike, so
	// responses never reveal which half failed.
	ErrBadCredentials = errors.New("invalid credentials")
	ErrAccountLocked  = errors.New("account locked")
)

// Service authenticates callers and issues access tokens plus sessions.
type Service struct {
	Users    *users.Service
	Signer   *sharedauth.Signer
	Sessions *SessionStore
}

func NewService(usersSvc *users.Service, signer *sharedauth.Signer, sessions *SessionStore) *Service {
	return &Service{Users: usersSvc, Signer: signer, Sessions: sessions}
}

// Login verifies the email/password pair and, on success, returns the user,
// a signed bearer token and a new server-side session ID. The login moment is
// recorded on the account.
func (s *Service) Login(ctx context.Context, email, password string) (users.User, string, string, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return users.User{}, "", "", ErrBadCredentials
		}
		return users.User{}, "", "", err
	}
	if user.IsLocked {
		return users.User{}, "", "", ErrAccountLocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return users.User{}, "", "", ErrBadCredentials
	}

	token, err := s.Signer.Sign(user.ID, user.Email, user.Role)
	if err != nil {
		return users.User{}, "", "", err
	}

	sessionID := s.Sessions.Create(sharedauth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})

	if err := s.Users.RecordLogin(ctx, user.ID); err != nil {
		return users.User{}, "", "", err
	}

	return user, token, sessionID, nil
}
