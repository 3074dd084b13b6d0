package domain

import (
	"strings"
	"time"
)

// Rating bounds for testimonials. Out-of-range submissions are clamped to
// the nearest bound rather than rejected.
const (
	RatingMin = 1
	RatingMax = 5
)

// Testimonial is a customer quote with a star rating.
type Testimonial struct {
	ID        string    `json:"id,omitempty"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Company   string    `json:"company"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"`
	AvatarURL string    `json:"avatarUrl"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func (t *Testimonial) Normalize() {
	t.Author = strings.TrimSpace(t.Author)
	t.Role = strings.TrimSpace(t.Role)
	t.Company = strings.TrimSpace(t.Company)
	t.Quote = strings.TrimSpace(t.Quote)
	t.Rating = ClampRating(t.Rating)
	t.AvatarURL = strings.TrimSpace(t.AvatarURL)
	t.Status = normalizeStatus(t.Status)
}

func (t *Testimonial) Validate() error {
	if strings.TrimSpace(t.Author) == "" {
		return Required("author")
	}
	if strings.TrimSpace(t.Quote) == "" {
		return Required("quote")
	}
	if t.Status != "" && !t.Status.Valid() {
		return Invalid("status", "must be draft or published")
	}
	return nil
}

// ClampRating pulls a rating into [RatingMin, RatingMax].
func ClampRating(r int) int {
	if r < RatingMin {
		return RatingMin
	}
	if r > RatingMax {
		return RatingMax
	}
	return r
}
