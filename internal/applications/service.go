package applications

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"recruitment-backend/internal/files"
	"recruitment-backend/internal/jobs"
	"recruitment-backend/internal/screening"
	"recruitment-backend/internal/shared/metrics"
	"recruitment-backend/internal/shared/telemetry"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrResumeRequired    = errors.New("resume file required")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidDateFormat = errors.New("invalid date or time format")
)

const (
	interviewDateLayout = "2006-01-02"
	interviewTimeLayout = "15:04"
)

// Service drives the application workflow: submission with resume screening,
// status changes and interview scheduling.
type Service struct {
	Repo   Repo
	Jobs   *jobs.Service
	Files  *files.Service
	Scorer screening.Scorer
}

func NewService(repo Repo, jobsSvc *jobs.Service, filesSvc *files.Service, scorer screening.Scorer) *Service {
	return &Service{Repo: repo, Jobs: jobsSvc, Files: filesSvc, Scorer: scorer}
}

// Submit files an application against an active posting. The resume is stored
// through the file registry and screened for an advisory match score; a
// screening failure never blocks the submission.
func (s *Service) Submit(ctx context.Context, candidateID, jobID int64, notes, resumeName, owner string, resume io.Reader) (Application, error) {
	app, err := s.submit(ctx, candidateID, jobID, notes, resumeName, owner, resume)
	if err != nil {
		metrics.IncApplicationFailed()
		return Application{}, err
	}
	metrics.IncApplicationSubmitted()
	return app, nil
}

func (s *Service) submit(ctx context.Context, candidateID, jobID int64, notes, resumeName, owner string, resume io.Reader) (Application, error) {
	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return Application{}, ErrJobNotFound
		}
		return Application{}, err
	}
	if !job.IsActive {
		// Inactive postings are indistinguishable from absent ones.
		return Application{}, ErrJobNotFound
	}
	if resume == nil || strings.TrimSpace(resumeName) == "" {
		return Application{}, ErrResumeRequired
	}

	stored, err := s.Files.Save(ctx, resume, resumeName, owner)
	if err != nil {
		return Application{}, err
	}

	aiScore, aiMatchKeywords := s.screen(ctx, stored, job)

	return s.Repo.Create(ctx, Application{
		JobID:           jobID,
		CandidateID:     candidateID,
		ResumeFileID:    stored.ID,
		AppliedOn:       time.Now().UTC(),
		Status:          StatusSubmitted,
		Notes:           notes,
		AIScore:         aiScore,
		AIMatchKeywords: aiMatchKeywords,
	})
}

func (s *Service) screen(ctx context.Context, stored files.StoredFile, job jobs.Job) (*float64, string) {
	start := metrics.NowMillis()
	defer func() {
		metrics.ObserveScreeningDurationMs(metrics.NowMillis() - start)
	}()

	data, err := s.Files.ReadAll(ctx, stored)
	if err != nil {
		telemetry.Warn("application.screening_skipped", map[string]any{
			"file_id": stored.ID,
			"error":   err.Error(),
		})
		return nil, ""
	}

	text, err := screening.ExtractText(ctx, data, stored.OriginalName)
	if err != nil {
		telemetry.Warn("application.screening_skipped", map[string]any{
			"file_id": stored.ID,
			"error":   err.Error(),
		})
		return nil, ""
	}

	score, keywords, err := s.Scorer.Score(ctx, text, job.RequiredSkills)
	if err != nil {
		telemetry.Warn("application.screening_skipped", map[string]any{
			"file_id": stored.ID,
			"error":   err.Error(),
		})
		return nil, ""
	}
	return &score, keywords
}

// ListQuery narrows the application listing. JobID and Status are exclusive
// filters; without either, callers who cannot see all get their own rows.
type ListQuery struct {
	JobID       *int64
	Status      string
	CandidateID int64
	SeeAll      bool
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]Application, error) {
	switch {
	case q.JobID != nil:
		if _, err := s.Jobs.GetByID(ctx, *q.JobID); err != nil {
			if errors.Is(err, jobs.ErrNotFound) {
				return nil, ErrJobNotFound
			}
			return nil, err
		}
		return s.Repo.ListByJob(ctx, *q.JobID)
	case q.Status != "":
		if !ValidStatus(q.Status) {
			return nil, ErrInvalidStatus
		}
		return s.Repo.ListByStatus(ctx, q.Status)
	case q.SeeAll:
		return s.Repo.ListAll(ctx)
	default:
		return s.Repo.ListByCandidate(ctx, q.CandidateID)
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (Application, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateStatus overwrites the status with any known value. Transitions are not
// restricted; recruiters move applications freely between stages.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (Application, error) {
	if !ValidStatus(status) {
		return Application{}, ErrInvalidStatus
	}
	app, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	app.Status = status
	if err := s.Repo.Update(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// InterviewInput carries interview scheduling details.
type InterviewInput struct {
	Date            string `json:"interviewDate"`
	Time            string `json:"interviewTime"`
	InterviewerName string `json:"interviewerName"`
	Location        string `json:"interviewLocation"`
}

func (in InterviewInput) validate() error {
	if _, err := time.Parse(interviewDateLayout, in.Date); err != nil {
		return ErrInvalidDateFormat
	}
	if _, err := time.Parse(interviewTimeLayout, in.Time); err != nil {
		return ErrInvalidDateFormat
	}
	return nil
}

// ScheduleInterview sets the interview details, stamps the scheduling moment
// and forces the status to Interview.
func (s *Service) ScheduleInterview(ctx context.Context, id int64, in InterviewInput) (Application, error) {
	if err := in.validate(); err != nil {
		return Application{}, err
	}
	app, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}

	now := time.Now().UTC()
	app.ScheduledOn = &now
	app.InterviewDate = in.Date
	app.InterviewTime = in.Time
	app.InterviewerName = in.InterviewerName
	app.InterviewLocation = in.Location
	app.Status = StatusInterview

	if err := s.Repo.Update(ctx, app); err != nil {
		return Application{}, err
	}
	metrics.IncInterviewScheduled()
	return app, nil
}

// UpdateInterview rewrites the interview details without touching the status
// or the original scheduling moment.
func (s *Service) UpdateInterview(ctx context.Context, id int64, in InterviewInput) (Application, error) {
	if err := in.validate(); err != nil {
		return Application{}, err
	}
	app, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}

	app.InterviewDate = in.Date
	app.InterviewTime = in.Time
	app.InterviewerName = in.InterviewerName
	app.InterviewLocation = in.Location

	if err := s.Repo.Update(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// CancelInterview clears all interview fields and returns the application to
// Submitted.
func (s *Service) CancelInterview(ctx context.Context, id int64) (Application, error) {
	app, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}

	app.ScheduledOn = nil
	app.InterviewDate = ""
	app.InterviewTime = ""
	app.InterviewerName = ""
	app.InterviewLocation = ""
	app.Status = StatusSubmitted

	if err := s.Repo.Update(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// CountByJob reports how many applications a posting has received.
func (s *Service) CountByJob(ctx context.Context, jobID int64) (int, error) {
	return s.Repo.CountByJob(ctx, jobID)
}
