package applications

import "time"

// Application workflow statuses. UpdateStatus accepts any known status and
// overwrites unconditionally; cancellation of an interview returns the
// application to Submitted.
const (
	StatusSubmitted = "Submitted"
	StatusScreened  = "Screened"
	StatusInterview = "Interview"
	StatusOffered   = "Offered"
	StatusRejected  = "Rejected"
)

// ValidStatus reports whether status is one of the known workflow statuses.
func ValidStatus(status string) bool {
	switch status {
	case StatusSubmitted, StatusScreened, StatusInterview, StatusOffered, StatusRejected:
		return true
	}
	return false
}

// Application is a candidate's submission against a posting. AIScore and
// AIMatchKeywords are advisory screening output and never drive the status.
type Application struct {
	ID              int64
	JobID           int64
	CandidateID     int64
	ResumeFileID    int64
	AppliedOn       time.Time
	Status          string
	Notes           string
	AIScore         *float64
	AIMatchKeywords string

	ScheduledOn       *time.Time
	InterviewDate     string
	InterviewTime     string
	InterviewerName   string
	InterviewLocation string
}
