package applications

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDTORoundTrip(t *testing.T) {
	score := 87.5
	scheduled := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	app := Application{
		ID:                3,
		JobID:             7,
		CandidateID:       42,
		ResumeFileID:      9,
		AppliedOn:         time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC),
		Status:            StatusInterview,
		Notes:             "strong profile",
		AIScore:           &score,
		AIMatchKeywords:   "Go, PostgreSQL",
		ScheduledOn:       &scheduled,
		InterviewDate:     "2026-09-15",
		InterviewTime:     "10:00",
		InterviewerName:   "Dana",
		InterviewLocation: "HQ",
	}

	dto := ToDTO(app, Summary{JobTitle: "Backend Engineer", CandidateUsername: "cand", ResumeFileName: "resume.pdf"})
	raw, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded ApplicationDTO
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := FromDTO(decoded)
	if got.ID != app.ID || got.Status != app.Status {
		t.Fatalf("got = %+v", got)
	}
	if got.AIScore == nil || *got.AIScore != score {
		t.Fatalf("score = %v", got.AIScore)
	}
	if got.InterviewDate != app.InterviewDate || got.InterviewTime != app.InterviewTime {
		t.Fatalf("interview = %q %q", got.InterviewDate, got.InterviewTime)
	}
	if got.ScheduledOn == nil || !got.ScheduledOn.Equal(scheduled) {
		t.Fatalf("scheduled = %v", got.ScheduledOn)
	}
	if got.InterviewerName != "Dana" || got.InterviewLocation != "HQ" {
		t.Fatalf("interviewer fields = %q %q", got.InterviewerName, got.InterviewLocation)
	}
}

func TestDTOOmitsNothingOnEmptyInterview(t *testing.T) {
	app := Application{ID: 1, JobID: 2, CandidateID: 3, ResumeFileID: 4, Status: StatusSubmitted}
	raw, err := json.Marshal(ToDTO(app, Summary{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"aiScore", "interviewScheduledOn", "interviewDate", "status"} {
		if _, ok := asMap[key]; !ok {
			t.Fatalf("missing key %q", key)
		}
	}
}
