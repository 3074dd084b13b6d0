package domain

import (
	"strings"
	"time"
)

// Plan is one tier on the pricing page.
type Plan struct {
	ID          string    `json:"id,omitempty"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Price       string    `json:"price"`
	Period      string    `json:"period"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	Highlighted bool      `json:"highlighted"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

func (p *Plan) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = NormalizeSlug(p.Slug, p.Title)
	p.Price = strings.TrimSpace(p.Price)
	p.Period = strings.TrimSpace(p.Period)
	p.Description = strings.TrimSpace(p.Description)
	p.Features = trimList(p.Features)
	p.Status = normalizeStatus(p.Status)
}

func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return Required("title")
	}
	if NormalizeSlug(p.Slug, p.Title) == "" {
		return Required("slug")
	}
	if p.Status != "" && !p.Status.Valid() {
		return Invalid("status", "must be draft or published")
	}
	return nil
}
