package util

import "testing"

func TestHashOwnerKey(t *testing.T) {
	owner := "jane.doe"
	got := HashOwnerKey(owner)
	if got != HashOwnerKey(owner) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}
