package files

import "time"

// StoredFile is the registry record for one uploaded file. The bytes live in
// the object store under StoredName; the record is immutable once created.
type StoredFile struct {
	ID            int64
	StoredName    string
	OriginalName  string
	OwnerUsername string
	CreatedAt     time.Time
}
