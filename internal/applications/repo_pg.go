package applications

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo is the postgres implementation of Repo.
type PGRepo struct {
	DB *sql.DB
}

const applicationColumns = `id, job_id, candidate_id, resume_file_id, applied_on, status, notes, ai_score, ai_match_keywords, interview_scheduled_on, interview_date, interview_time, interviewer_name, interview_location`

func (r *PGRepo) Create(ctx context.Context, app Application) (Application, error) {
	const query = `
INSERT INTO applications (job_id, candidate_id, resume_file_id, applied_on, status, notes, ai_score, ai_match_keywords)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
	err := r.DB.QueryRowContext(ctx, query,
		app.JobID,
		app.CandidateID,
		app.ResumeFileID,
		app.AppliedOn,
		app.Status,
		nullableString(app.Notes),
		app.AIScore,
		nullableString(app.AIMatchKeywords),
	).Scan(&app.ID)
	if err != nil {
		return Application{}, err
	}
	return app, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1 LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) ListAll(ctx context.Context) ([]Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications ORDER BY id`
	return r.queryMany(ctx, query)
}

func (r *PGRepo) ListByJob(ctx context.Context, jobID int64) ([]Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 ORDER BY id`
	return r.queryMany(ctx, query, jobID)
}

func (r *PGRepo) ListByStatus(ctx context.Context, status string) ([]Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE status = $1 ORDER BY id`
	return r.queryMany(ctx, query, status)
}

func (r *PGRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE candidate_id = $1 ORDER BY id`
	return r.queryMany(ctx, query, candidateID)
}

func (r *PGRepo) Update(ctx context.Context, app Application) error {
	const query = `
UPDATE applications
SET status = $2, notes = $3, ai_score = $4, ai_match_keywords = $5,
    interview_scheduled_on = $6, interview_date = $7, interview_time = $8,
    interviewer_name = $9, interview_location = $10
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		app.ID,
		app.Status,
		nullableString(app.Notes),
		app.AIScore,
		nullableString(app.AIMatchKeywords),
		app.ScheduledOn,
		nullableString(app.InterviewDate),
		nullableString(app.InterviewTime),
		nullableString(app.InterviewerName),
		nullableString(app.InterviewLocation),
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

func (r *PGRepo) CountByJob(ctx context.Context, jobID int64) (int, error) {
	const query = `SELECT count(*) FROM applications WHERE job_id = $1`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, jobID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Application, error) {
	var (
		app               Application
		notes             sql.NullString
		aiScore           sql.NullFloat64
		aiMatchKeywords   sql.NullString
		scheduledOn       sql.NullTime
		interviewDate     sql.NullString
		interviewTime     sql.NullString
		interviewerName   sql.NullString
		interviewLocation sql.NullString
	)
	err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.CandidateID,
		&app.ResumeFileID,
		&app.AppliedOn,
		&app.Status,
		&notes,
		&aiScore,
		&aiMatchKeywords,
		&scheduledOn,
		&interviewDate,
		&interviewTime,
		&interviewerName,
		&interviewLocation,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	app.Notes = notes.String
	if aiScore.Valid {
		score := aiScore.Float64
		app.AIScore = &score
	}
	app.AIMatchKeywords = aiMatchKeywords.String
	if scheduledOn.Valid {
		when := scheduledOn.Time
		app.ScheduledOn = &when
	}
	app.InterviewDate = interviewDate.String
	app.InterviewTime = interviewTime.String
	app.InterviewerName = interviewerName.String
	app.InterviewLocation = interviewLocation.String
	return app, nil
}

func (r *PGRepo) queryMany(ctx context.Context, query string, args ...any) ([]Application, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		app, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
