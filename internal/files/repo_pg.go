package files

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo is the postgres implementation of Repo.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, file StoredFile) (StoredFile, error) {
	const query = `
INSERT INTO upload_files (stored_name, original_name, owner_username, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := r.DB.QueryRowContext(ctx, query,
		file.StoredName,
		file.OriginalName,
		file.OwnerUsername,
		file.CreatedAt,
	).Scan(&file.ID)
	if err != nil {
		return StoredFile{}, err
	}
	return file, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (StoredFile, error) {
	const query = `
SELECT id, stored_name, original_name, owner_username, created_at
FROM upload_files
WHERE id = $1
LIMIT 1`
	var file StoredFile
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&file.ID,
		&file.StoredName,
		&file.OriginalName,
		&file.OwnerUsername,
		&file.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredFile{}, ErrNotFound
		}
		return StoredFile{}, err
	}
	return file, nil
}
