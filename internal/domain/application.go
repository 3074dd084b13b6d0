package domain

import (
	"strings"
	"time"
)

// JobApplication is a candidate submission against a published job. It is
// only ever visible in the admin area, so it carries no publish status.
type JobApplication struct {
	ID          string    `json:"id,omitempty"`
	JobID       string    `json:"jobId"`
	JobTitle    string    `json:"jobTitle"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CoverLetter string    `json:"coverLetter"`
	CVURL       string    `json:"cvUrl"`
	CVPath      string    `json:"cvPath"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

func (a *JobApplication) Normalize() {
	a.JobID = strings.TrimSpace(a.JobID)
	a.JobTitle = strings.TrimSpace(a.JobTitle)
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.Phone = strings.TrimSpace(a.Phone)
	a.CoverLetter = strings.TrimSpace(a.CoverLetter)
	a.CVURL = strings.TrimSpace(a.CVURL)
	a.CVPath = strings.TrimSpace(a.CVPath)
}

func (a *JobApplication) Validate() error {
	if strings.TrimSpace(a.JobID) == "" {
		return Required("jobId")
	}
	if strings.TrimSpace(a.Name) == "" {
		return Required("name")
	}
	email := strings.TrimSpace(a.Email)
	if email == "" {
		return Required("email")
	}
	if !strings.Contains(email, "@") {
		return Invalid("email", "not an email address")
	}
	return nil
}
