package domain

import (
	"strings"
	"time"
)

// Job is an open position on the career page.
type Job struct {
	ID               string    `json:"id,omitempty"`
	Slug             string    `json:"slug"`
	Title            string    `json:"title"`
	Category         string    `json:"category"`
	Location         string    `json:"location"`
	EmploymentType   string    `json:"employmentType"`
	Vacancies        int       `json:"vacancies"`
	Summary          string    `json:"summary"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	Benefits         []string  `json:"benefits"`
	ContactEmail     string    `json:"contactEmail"`
	Status           Status    `json:"status"`
	CreatedAt        time.Time `json:"createdAt,omitzero"`
	UpdatedAt        time.Time `json:"updatedAt,omitzero"`
}

func (j *Job) Normalize() {
	j.Title = strings.TrimSpace(j.Title)
	j.Slug = NormalizeSlug(j.Slug, j.Title)
	j.Category = strings.TrimSpace(j.Category)
	j.Location = strings.TrimSpace(j.Location)
	j.EmploymentType = strings.TrimSpace(j.EmploymentType)
	if j.Vacancies < 1 {
		j.Vacancies = 1
	}
	j.Summary = strings.TrimSpace(j.Summary)
	j.Requirements = trimList(j.Requirements)
	j.Responsibilities = trimList(j.Responsibilities)
	j.Benefits = trimList(j.Benefits)
	j.ContactEmail = strings.ToLower(strings.TrimSpace(j.ContactEmail))
	j.Status = normalizeStatus(j.Status)
}

func (j *Job) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return Required("title")
	}
	if NormalizeSlug(j.Slug, j.Title) == "" {
		return Required("slug")
	}
	if email := strings.TrimSpace(j.ContactEmail); email != "" && !strings.Contains(email, "@") {
		return Invalid("contactEmail", "not an email address")
	}
	if j.Status != "" && !j.Status.Valid() {
		return Invalid("status", "must be draft or published")
	}
	return nil
}
