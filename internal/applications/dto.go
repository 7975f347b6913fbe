package applications

import "time"

// ApplicationDTO is the outward-facing representation of an application,
// enriched with job, candidate and resume summaries.
type ApplicationDTO struct {
	ApplicationID     int64      `json:"applicationId"`
	JobID             int64      `json:"jobId"`
	JobTitle          string     `json:"jobTitle"`
	CandidateID       int64      `json:"candidateId"`
	CandidateUsername string     `json:"candidateUsername"`
	CandidateEmail    string     `json:"candidateEmail"`
	ResumeFileID      int64      `json:"resumeFileId"`
	ResumeFileName    string     `json:"resumeFileName"`
	AppliedOn         time.Time  `json:"appliedOn"`
	Status            string     `json:"status"`
	Notes             string     `json:"notes"`
	AIScore           *float64   `json:"aiScore"`
	AIMatchKeywords   string     `json:"aiMatchKeywords"`
	ScheduledOn       *time.Time `json:"interviewScheduledOn"`
	InterviewDate     string     `json:"interviewDate"`
	InterviewTime     string     `json:"interviewTime"`
	InterviewerName   string     `json:"interviewerName"`
	InterviewLocation string     `json:"interviewLocation"`
}

// Summary carries the display fields a DTO needs from related records.
type Summary struct {
	JobTitle          string
	CandidateUsername string
	CandidateEmail    string
	ResumeFileName    string
}

// ToDTO converts an Application plus related summaries.
func ToDTO(app Application, sum Summary) ApplicationDTO {
	return ApplicationDTO{
		ApplicationID:     app.ID,
		JobID:             app.JobID,
		JobTitle:          sum.JobTitle,
		CandidateID:       app.CandidateID,
		CandidateUsername: sum.CandidateUsername,
		CandidateEmail:    sum.CandidateEmail,
		ResumeFileID:      app.ResumeFileID,
		ResumeFileName:    sum.ResumeFileName,
		AppliedOn:         app.AppliedOn,
		Status:            app.Status,
		Notes:             app.Notes,
		AIScore:           app.AIScore,
		AIMatchKeywords:   app.AIMatchKeywords,
		ScheduledOn:       app.ScheduledOn,
		InterviewDate:     app.InterviewDate,
		InterviewTime:     app.InterviewTime,
		InterviewerName:   app.InterviewerName,
		InterviewLocation: app.InterviewLocation,
	}
}

// FromDTO rebuilds the workflow fields of an Application from its DTO.
func FromDTO(dto ApplicationDTO) Application {
	return Application{
		ID:                dto.ApplicationID,
		JobID:             dto.JobID,
		CandidateID:       dto.CandidateID,
		ResumeFileID:      dto.ResumeFileID,
		AppliedOn:         dto.AppliedOn,
		Status:            dto.Status,
		Notes:             dto.Notes,
		AIScore:           dto.AIScore,
		AIMatchKeywords:   dto.AIMatchKeywords,
		ScheduledOn:       dto.ScheduledOn,
		InterviewDate:     dto.InterviewDate,
		InterviewTime:     dto.InterviewTime,
		InterviewerName:   dto.InterviewerName,
		InterviewLocation: dto.InterviewLocation,
	}
}
