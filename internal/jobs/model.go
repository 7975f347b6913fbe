package jobs

import "time"

// Job is a posted position. PostedBy and PostedOn are immutable after create.
type Job struct {
	ID                 int64
	Title              string
	Description        string
	RequiredSkills     string
	ExperienceRequired string
	Location           string
	JobType            string
	PostedOn           time.Time
	Deadline           *time.Time
	IsActive           bool
	PostedBy           int64
}
