package domain

import (
	"strings"
	"time"
)

// MediaKind distinguishes the entries of a portfolio item's media list.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Media is one entry in a portfolio item's ordered media list.
type Media struct {
	Kind        MediaKind `json:"kind"`
	URL         string    `json:"url"`
	ContentType string    `json:"contentType,omitempty"`
	StoragePath string    `json:"storagePath,omitempty"`
}

// PortfolioItem is a showcased project. Unlike other content types it may
// pre-assign its own id so the id lines up with the media folder layout in
// object storage.
type PortfolioItem struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	SubCategory string    `json:"subCategory"`
	Summary     string    `json:"summary"`
	ClientName  string    `json:"clientName"`
	ProjectURL  string    `json:"projectUrl"`
	Media       []Media   `json:"media"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

func (p *PortfolioItem) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	p.SubCategory = strings.TrimSpace(p.SubCategory)
	p.Summary = strings.TrimSpace(p.Summary)
	p.ClientName = strings.TrimSpace(p.ClientName)
	p.ProjectURL = strings.TrimSpace(p.ProjectURL)
	media := make([]Media, 0, len(p.Media))
	for _, m := range p.Media {
		m.URL = strings.TrimSpace(m.URL)
		if m.URL == "" {
			continue
		}
		if m.Kind == "" {
			m.Kind = MediaImage
		}
		m.ContentType = strings.TrimSpace(m.ContentType)
		m.StoragePath = strings.TrimSpace(m.StoragePath)
		media = append(media, m)
	}
	p.Media = media
	p.Status = normalizeStatus(p.Status)
}

func (p *PortfolioItem) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return Required("title")
	}
	if strings.TrimSpace(p.Category) == "" {
		return Required("category")
	}
	for _, m := range p.Media {
		if m.Kind != "" && m.Kind != MediaImage && m.Kind != MediaVideo {
			return Invalid("media.kind", "must be image or video")
		}
	}
	if p.Status != "" && !p.Status.Valid() {
		return Invalid("status", "must be draft or published")
	}
	return nil
}
