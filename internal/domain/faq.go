package domain

import (
	"strings"
	"time"
)

// FAQ is one question/answer pair. Order controls display position,
// lowest first.
type FAQ struct {
	ID        string    `json:"id,omitempty"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Order     int       `json:"order"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func (f *FAQ) Normalize() {
	f.Question = strings.TrimSpace(f.Question)
	f.Answer = strings.TrimSpace(f.Answer)
	if f.Order < 0 {
		f.Order = 0
	}
	f.Status = normalizeStatus(f.Status)
}

func (f *FAQ) Validate() error {
	if strings.TrimSpace(f.Question) == "" {
		return Required("question")
	}
	if strings.TrimSpace(f.Answer) == "" {
		return Required("answer")
	}
	if f.Status != "" && !f.Status.Valid() {
		return Invalid("status", "must be draft or published")
	}
	return nil
}
