package jobs

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo is the postgres implementation of Repo.
type PGRepo struct {
	DB *sql.DB
}

const jobColumns = `id, title, description, required_skills, experience_required, location, job_type, posted_on, deadline, is_active, posted_by`

func (r *PGRepo) Create(ctx context.Context, job Job) (Job, error) {
	const query = `
INSERT INTO job_postings (title, description, required_skills, experience_required, location, job_type, posted_on, deadline, is_active, posted_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`
	err := r.DB.QueryRowContext(ctx, query,
		job.Title,
		job.Description,
		job.RequiredSkills,
		nullableString(job.ExperienceRequired),
		job.Location,
		job.JobType,
		job.PostedOn,
		job.Deadline,
		job.IsActive,
		job.PostedBy,
	).Scan(&job.ID)
	if err != nil {
		return Job{}, err
	}
	return job, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1 LIMIT 1`
	return scanJob(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) ListAll(ctx context.Context) ([]Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM job_postings ORDER BY id`
	return r.queryMany(ctx, query)
}

func (r *PGRepo) ListActive(ctx context.Context) ([]Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM job_postings WHERE is_active ORDER BY id`
	return r.queryMany(ctx, query)
}

func (r *PGRepo) Update(ctx context.Context, job Job) error {
	const query = `
UPDATE job_postings
SET title = $2, description = $3, required_skills = $4, experience_required = $5,
    location = $6, job_type = $7, deadline = $8, is_active = $9
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.Title,
		job.Description,
		job.RequiredSkills,
		nullableString(job.ExperienceRequired),
		job.Location,
		job.JobType,
		job.Deadline,
		job.IsActive,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	var experience sql.NullString
	var deadline sql.NullTime
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.RequiredSkills,
		&experience,
		&job.Location,
		&job.JobType,
		&job.PostedOn,
		&deadline,
		&job.IsActive,
		&job.PostedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	if experience.Valid {
		job.ExperienceRequired = experience.String
	}
	if deadline.Valid {
		t := deadline.Time
		job.Deadline = &t
	}
	return job, nil
}

func (r *PGRepo) queryMany(ctx context.Context, query string, args ...any) ([]Job, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
