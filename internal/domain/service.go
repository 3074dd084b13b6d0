package domain

import (
	"strings"
	"time"
)

// Service is one offering on the services page.
type Service struct {
	ID          string    `json:"id,omitempty"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Features    []string  `json:"features"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

func (s *Service) Normalize() {
	s.Title = strings.TrimSpace(s.Title)
	s.Slug = NormalizeSlug(s.Slug, s.Title)
	s.Summary = strings.TrimSpace(s.Summary)
	s.Description = strings.TrimSpace(s.Description)
	s.Icon = strings.TrimSpace(s.Icon)
	s.Features = trimList(s.Features)
	s.Status = normalizeStatus(s.Status)
}

func (s *Service) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return Required("title")
	}
	if NormalizeSlug(s.Slug, s.Title) == "" {
		return Required("slug")
	}
	if s.Status != "" && !s.Status.Valid() {
		return Invalid("status", "must be draft or published")
	}
	return nil
}
