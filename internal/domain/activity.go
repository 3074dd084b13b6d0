package domain

import (
	"strings"
	"time"
)

// Activity is a company life / culture entry shown on the team page.
type Activity struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

func (a *Activity) Normalize() {
	a.Title = strings.TrimSpace(a.Title)
	a.Description = strings.TrimSpace(a.Description)
	a.ImageURL = strings.TrimSpace(a.ImageURL)
	a.Status = normalizeStatus(a.Status)
}

func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return Required("title")
	}
	if a.Status != "" && !a.Status.Valid() {
		return Invalid("status", "must be draft or published")
	}
	return nil
}
