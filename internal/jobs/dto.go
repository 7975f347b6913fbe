package jobs

import "time"

// JobDTO is the outward-facing representation of a posting.
type JobDTO struct {
	JobID              int64      `json:"jobId"`
	JobTitle           string     `json:"jobTitle"`
	JobDescription     string     `json:"jobDescription"`
	RequiredSkills     string     `json:"requiredSkills"`
	ExperienceRequired string     `json:"experienceRequired"`
	Location           string     `json:"location"`
	JobType            string     `json:"jobType"`
	PostedOn           time.Time  `json:"postedOn"`
	Deadline           *time.Time `json:"deadline"`
	IsActive           bool       `json:"isActive"`
	PostedByUsername   string     `json:"postedByUsername"`
	PostedByEmail      string     `json:"postedByEmail"`
	ApplicationCount   int        `json:"applicationCount"`
}

// ToDTO converts a Job plus its poster summary and application count.
func ToDTO(job Job, posterUsername, posterEmail string, applicationCount int) JobDTO {
	return JobDTO{
		JobID:              job.ID,
		JobTitle:           job.Title,
		JobDescription:     job.Description,
		RequiredSkills:     job.RequiredSkills,
		ExperienceRequired: job.ExperienceRequired,
		Location:           job.Location,
		JobType:            job.JobType,
		PostedOn:           job.PostedOn,
		Deadline:           job.Deadline,
		IsActive:           job.IsActive,
		PostedByUsername:   posterUsername,
		PostedByEmail:      posterEmail,
		ApplicationCount:   applicationCount,
	}
}
