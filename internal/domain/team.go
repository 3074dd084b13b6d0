package domain

import (
	"strings"
	"time"
)

// SocialLink is one labelled profile link on a team member card.
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// TeamMember is one person on the team page.
type TeamMember struct {
	ID        string       `json:"id,omitempty"`
	Name      string       `json:"name"`
	Role      string       `json:"role"`
	Bio       string       `json:"bio"`
	PhotoURL  string       `json:"photoUrl"`
	Socials   []SocialLink `json:"socials"`
	Status    Status       `json:"status"`
	CreatedAt time.Time    `json:"createdAt,omitzero"`
	UpdatedAt time.Time    `json:"updatedAt,omitzero"`
}

func (m *TeamMember) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Role = strings.TrimSpace(m.Role)
	m.Bio = strings.TrimSpace(m.Bio)
	m.PhotoURL = strings.TrimSpace(m.PhotoURL)
	socials := make([]SocialLink, 0, len(m.Socials))
	for _, s := range m.Socials {
		s.Label = strings.TrimSpace(s.Label)
		s.URL = strings.TrimSpace(s.URL)
		if s.URL == "" {
			continue
		}
		socials = append(socials, s)
	}
	m.Socials = socials
	m.Status = normalizeStatus(m.Status)
}

func (m *TeamMember) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return Required("name")
	}
	if m.Status != "" && !m.Status.Valid() {
		return Invalid("status", "must be draft or published")
	}
	return nil
}
