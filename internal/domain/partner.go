package domain

import (
	"strings"
	"time"
)

// Partner is a client or technology partner shown in the logo strip.
type Partner struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	LogoURL    string    `json:"logoUrl"`
	WebsiteURL string    `json:"websiteUrl"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}

func (p *Partner) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.LogoURL = strings.TrimSpace(p.LogoURL)
	p.WebsiteURL = strings.TrimSpace(p.WebsiteURL)
	p.Status = normalizeStatus(p.Status)
}

func (p *Partner) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return Required("name")
	}
	if p.Status != "" && !p.Status.Valid() {
		return Invalid("status", "must be draft or published")
	}
	return nil
}
