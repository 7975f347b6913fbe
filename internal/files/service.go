package files

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"recruitment-backend/internal/shared/storage/object"
)

var ErrInvalidInput = errors.New("invalid input")

// Service contains file-registry business logic.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

func NewService(store object.ObjectStore, repo Repo) *Service {
	return &Service{Store: store, Repo: repo}
}

// Save writes the upload to the object store and records it in the registry.
// The stored name is generated per call, so concurrent uploads never collide.
func (s *Service) Save(ctx context.Context, r io.Reader, originalName, owner string) (StoredFile, error) {
	if strings.TrimSpace(originalName) == "" {
		return StoredFile{}, ErrInvalidInput
	}

	storedName, _, err := s.Store.Save(ctx, owner, originalName, r)
	if err != nil {
		return StoredFile{}, err
	}

	return s.Repo.Create(ctx, StoredFile{
		StoredName:    storedName,
		OriginalName:  originalName,
		OwnerUsername: owner,
		CreatedAt:     time.Now().UTC(),
	})
}

// Open returns the registry record and a reader over the stored bytes.
// A missing record or missing bytes both surface as ErrNotFound.
func (s *Service) Open(ctx context.Context, id int64) (StoredFile, io.ReadCloser, error) {
	file, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return StoredFile{}, nil, err
	}
	body, err := s.Store.Open(ctx, file.StoredName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StoredFile{}, nil, ErrNotFound
		}
		return StoredFile{}, nil, err
	}
	return file, body, nil
}

// ReadAll returns the full stored payload for a file record.
func (s *Service) ReadAll(ctx context.Context, file StoredFile) ([]byte, error) {
	body, err := s.Store.Open(ctx, file.StoredName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

// ViewContentType selects a content type from the original file's extension.
// Download responses always use application/octet-stream.
func ViewContentType(originalName string) string {
	switch strings.ToLower(filepath.Ext(originalName)) {
	case ".pdf":
		return "application/pdf"
	case ".doc", ".docx":
		return "application/msword"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
