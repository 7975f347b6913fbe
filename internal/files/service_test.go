package files

import (
	"context"
	"strings"
	"testing"

	"recruitment-backend/internal/shared/storage/object/local"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := local.New(t.TempDir())
	svc := NewService(store, NewMemoryRepo())

	saved, err := svc.Save(context.Background(), strings.NewReader("resume body"), "resume.pdf", "cand@example.com")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if saved.OriginalName != "resume.pdf" {
		t.Fatalf("original name = %q", saved.OriginalName)
	}

	file, body, err := svc.Open(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer body.Close()
	if file.StoredName != saved.StoredName {
		t.Fatalf("stored name mismatch: %q vs %q", file.StoredName, saved.StoredName)
	}

	got, err := svc.ReadAll(context.Background(), file)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "resume body" {
		t.Fatalf("payload = %q", got)
	}
}

func TestSaveRejectsEmptyName(t *testing.T) {
	store := local.New(t.TempDir())
	svc := NewService(store, NewMemoryRepo())

	if _, err := svc.Save(context.Background(), strings.NewReader("x"), "  ", "cand@example.com"); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOpenUnknownID(t *testing.T) {
	store := local.New(t.TempDir())
	svc := NewService(store, NewMemoryRepo())

	if _, _, err := svc.Open(context.Background(), 404); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestViewContentType(t *testing.T) {
	cases := map[string]string{
		"resume.pdf":  "application/pdf",
		"resume.PDF":  "application/pdf",
		"resume.doc":  "application/msword",
		"resume.docx": "application/msword",
		"notes.txt":   "text/plain",
		"blob.bin":    "application/octet-stream",
	}
	for name, want := range cases {
		if got := ViewContentType(name); got != want {
			t.Errorf("ViewContentType(%q) = %q, want %q", name, got, want)
		}
	}
}
