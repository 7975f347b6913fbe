package jobs

import (
	"context"
	"errors"
	"strings"
	"time"

	"recruitment-backend/internal/shared/telemetry"
)

var ErrInvalidInput = errors.New("invalid input")

const deadlineLayout = "2006-01-02"

// JobInput carries the editable fields of a posting. Deadline is a raw
// YYYY-MM-DD string; values that fail to parse leave the deadline unset.
type JobInput struct {
	Title              string `json:"jobTitle"`
	Description        string `json:"jobDescription"`
	RequiredSkills     string `json:"requiredSkills"`
	ExperienceRequired string `json:"experienceRequired"`
	Location           string `json:"location"`
	JobType            string `json:"jobType"`
	Deadline           string `json:"deadline"`
}

func (in JobInput) validate() error {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.RequiredSkills) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.JobType) == "" {
		return ErrInvalidInput
	}
	return nil
}

// Service contains job-catalog business logic.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create posts a new job on behalf of postedBy. New postings start active.
func (s *Service) Create(ctx context.Context, postedBy int64, in JobInput) (Job, error) {
	if err := in.validate(); err != nil {
		return Job{}, err
	}
	job := Job{
		Title:              in.Title,
		Description:        in.Description,
		RequiredSkills:     in.RequiredSkills,
		ExperienceRequired: in.ExperienceRequired,
		Location:           in.Location,
		JobType:            in.JobType,
		PostedOn:           time.Now().UTC(),
		Deadline:           parseDeadline(in.Deadline),
		IsActive:           true,
		PostedBy:           postedBy,
	}
	return s.Repo.Create(ctx, job)
}

// Update overwrites the editable fields. ID, PostedBy and PostedOn are kept.
func (s *Service) Update(ctx context.Context, id int64, in JobInput) (Job, error) {
	if err := in.validate(); err != nil {
		return Job{}, err
	}
	job, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Job{}, err
	}
	job.Title = in.Title
	job.Description = in.Description
	job.RequiredSkills = in.RequiredSkills
	job.ExperienceRequired = in.ExperienceRequired
	job.Location = in.Location
	job.JobType = in.JobType
	if deadline := parseDeadline(in.Deadline); deadline != nil {
		job.Deadline = deadline
	}
	if err := s.Repo.Update(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// ToggleActive flips the posting's visibility flag.
func (s *Service) ToggleActive(ctx context.Context, id int64) (Job, error) {
	job, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Job{}, err
	}
	job.IsActive = !job.IsActive
	if err := s.Repo.Update(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Job, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) GetActive(ctx context.Context) ([]Job, error) {
	return s.Repo.ListActive(ctx)
}

func (s *Service) GetAll(ctx context.Context) ([]Job, error) {
	return s.Repo.ListAll(ctx)
}

// parseDeadline parses a YYYY-MM-DD deadline. Failures are swallowed and the
// deadline left unset, matching the portal's lenient handling.
func parseDeadline(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(deadlineLayout, raw)
	if err != nil {
		telemetry.Warn("job.deadline_ignored", map[string]any{"deadline": raw, "error": err.Error()})
		return nil
	}
	return &t
}
