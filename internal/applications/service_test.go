package applications

import (
	"context"
	"strings"
	"testing"

	"recruitment-backend/internal/files"
	"recruitment-backend/internal/jobs"
	"recruitment-backend/internal/screening"
	"recruitment-backend/internal/shared/storage/object/local"
)

type fixture struct {
	svc  *Service
	jobs *jobs.Service
	job  jobs.Job
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	jobsSvc := jobs.NewService(jobs.NewMemoryRepo())
	job, err := jobsSvc.Create(context.Background(), 1, jobs.JobInput{
		Title:          "Backend Engineer",
		Description:    "Build services",
		RequiredSkills: "Go, PostgreSQL",
		Location:       "Remote",
		JobType:        "Full-time",
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	filesSvc := files.NewService(local.New(t.TempDir()), files.NewMemoryRepo())
	svc := NewService(NewMemoryRepo(), jobsSvc, filesSvc, screening.KeywordScorer{})
	return &fixture{svc: svc, jobs: jobsSvc, job: job}
}

func (f *fixture) submit(t *testing.T, resume string) Application {
	t.Helper()
	app, err := f.svc.Submit(context.Background(), 42, f.job.ID, "notes",
		"resume.txt", "cand@example.com", strings.NewReader(resume))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return app
}

func TestSubmitScoresResume(t *testing.T) {
	f := newFixture(t)

	app := f.submit(t, "Go developer with PostgreSQL experience")
	if app.Status != StatusSubmitted {
		t.Fatalf("status = %q", app.Status)
	}
	if app.AIScore == nil || *app.AIScore != 100 {
		t.Fatalf("score = %v, want 100", app.AIScore)
	}
	if app.AIMatchKeywords != "Go, PostgreSQL" {
		t.Fatalf("keywords = %q", app.AIMatchKeywords)
	}
	if app.ResumeFileID == 0 {
		t.Fatal("expected resume file id")
	}
}

func TestSubmitUnknownJob(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Submit(context.Background(), 42, 999, "", "resume.txt", "cand@example.com", strings.NewReader("x"))
	if err != ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestSubmitInactiveJob(t *testing.T) {
	f := newFixture(t)
	if _, err := f.jobs.ToggleActive(context.Background(), f.job.ID); err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}

	_, err := f.svc.Submit(context.Background(), 42, f.job.ID, "", "resume.txt", "cand@example.com", strings.NewReader("x"))
	if err != ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestSubmitMissingResume(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Submit(context.Background(), 42, f.job.ID, "", "", "cand@example.com", nil)
	if err != ErrResumeRequired {
		t.Fatalf("expected ErrResumeRequired, got %v", err)
	}
}

func TestSubmitUnscorableResumeStillSucceeds(t *testing.T) {
	f := newFixture(t)

	app, err := f.svc.Submit(context.Background(), 42, f.job.ID, "", "resume.xyz", "cand@example.com", strings.NewReader("opaque"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if app.AIScore != nil {
		t.Fatalf("score = %v, want nil for unscorable resume", app.AIScore)
	}
	if app.Status != StatusSubmitted {
		t.Fatalf("status = %q", app.Status)
	}
}

func TestUpdateStatusOverwrites(t *testing.T) {
	f := newFixture(t)
	app := f.submit(t, "resume")

	updated, err := f.svc.UpdateStatus(context.Background(), app.ID, StatusOffered)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != StatusOffered {
		t.Fatalf("status = %q", updated.Status)
	}

	// Any known status is accepted, including moving backwards.
	updated, err = f.svc.UpdateStatus(context.Background(), app.ID, StatusScreened)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != StatusScreened {
		t.Fatalf("status = %q", updated.Status)
	}
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	f := newFixture(t)
	app := f.submit(t, "resume")

	if _, err := f.svc.UpdateStatus(context.Background(), app.ID, "Hired"); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestScheduleInterview(t *testing.T) {
	f := newFixture(t)
	app := f.submit(t, "resume")

	scheduled, err := f.svc.ScheduleInterview(context.Background(), app.ID, InterviewInput{
		Date:            "2026-09-15",
		Time:            "14:30",
		InterviewerName: "Dana",
		Location:        "HQ Room 3",
	})
	if err != nil {
		t.Fatalf("ScheduleInterview: %v", err)
	}
	if scheduled.Status != StatusInterview {
		t.Fatalf("status = %q", scheduled.Status)
	}
	if scheduled.ScheduledOn == nil {
		t.Fatal("expected scheduled timestamp")
	}
	if scheduled.InterviewDate != "2026-09-15" || scheduled.InterviewTime != "14:30" {
		t.Fatalf("interview fields = %q %q", scheduled.InterviewDate, scheduled.InterviewTime)
	}
}

func TestScheduleInterviewBadDate(t *testing.T) {
	f := newFixture(t)
	app := f.submit(t, "resume")

	cases := []InterviewInput{
		{Date: "15-09-2026", Time: "14:30"},
		{Date: "2026-09-15", Time: "2pm"},
		{Date: "", Time: ""},
	}
	for _, in := range cases {
		if _, err := f.svc.ScheduleInterview(context.Background(), app.ID, in); err != ErrInvalidDateFormat {
			t.Fatalf("input %+v: expected ErrInvalidDateFormat, got %v", in, err)
		}
	}
}

func TestUpdateInterviewKeepsStatus(t *testing.T) {
	f := newFixture(t)
	app := f.submit(t, "resume")
	if _, err := f.svc.ScheduleInterview(context.Background(), app.ID, InterviewInput{Date: "2026-09-15", Time: "14:30"}); err != nil {
		t.Fatalf("ScheduleInterview: %v", err)
	}
	if _, err := f.svc.UpdateStatus(context.Background(), app.ID, StatusOffered); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	updated, err := f.svc.UpdateInterview(context.Background(), app.ID, InterviewInput{Date: "2026-09-16", Time: "09:00"})
	if err != nil {
		t.Fatalf("UpdateInterview: %v", err)
	}
	if updated.Status != StatusOffered {
		t.Fatalf("status = %q, update must not touch it", updated.Status)
	}
	if updated.InterviewDate != "2026-09-16" {
		t.Fatalf("interview date = %q", updated.InterviewDate)
	}
}

func TestCancelInterviewResetsToSubmitted(t *testing.T) {
	f := newFixture(t)
	app := f.submit(t, "resume")
	if _, err := f.svc.ScheduleInterview(context.Background(), app.ID, InterviewInput{Date: "2026-09-15", Time: "14:30", InterviewerName: "Dana"}); err != nil {
		t.Fatalf("ScheduleInterview: %v", err)
	}

	cancelled, err := f.svc.CancelInterview(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("CancelInterview: %v", err)
	}
	if cancelled.Status != StatusSubmitted {
		t.Fatalf("status = %q", cancelled.Status)
	}
	if cancelled.ScheduledOn != nil || cancelled.InterviewDate != "" || cancelled.InterviewerName != "" {
		t.Fatalf("interview fields not cleared: %+v", cancelled)
	}
}

func TestListFilters(t *testing.T) {
	f := newFixture(t)
	first := f.submit(t, "resume one")
	if _, err := f.svc.UpdateStatus(context.Background(), first.ID, StatusScreened); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	second, err := f.svc.Submit(context.Background(), 43, f.job.ID, "", "resume.txt", "other@example.com", strings.NewReader("resume two"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	byJob, err := f.svc.List(context.Background(), ListQuery{JobID: &f.job.ID})
	if err != nil {
		t.Fatalf("List byJob: %v", err)
	}
	if len(byJob) != 2 {
		t.Fatalf("byJob len = %d", len(byJob))
	}

	byStatus, err := f.svc.List(context.Background(), ListQuery{Status: StatusScreened})
	if err != nil {
		t.Fatalf("List byStatus: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ID != first.ID {
		t.Fatalf("byStatus = %+v", byStatus)
	}

	own, err := f.svc.List(context.Background(), ListQuery{CandidateID: 43})
	if err != nil {
		t.Fatalf("List own: %v", err)
	}
	if len(own) != 1 || own[0].ID != second.ID {
		t.Fatalf("own = %+v", own)
	}

	all, err := f.svc.List(context.Background(), ListQuery{CandidateID: 43, SeeAll: true})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all len = %d", len(all))
	}
}

func TestListUnknownJob(t *testing.T) {
	f := newFixture(t)
	unknown := int64(999)
	if _, err := f.svc.List(context.Background(), ListQuery{JobID: &unknown}); err != ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
