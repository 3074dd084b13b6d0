package domain

// Status gates public visibility of a content record. Only published
// records are exposed on the public read path.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// normalizeStatus defaults an empty status to draft so new records never
// leak onto public pages by accident.
func normalizeStatus(s Status) Status {
	if s == "" {
		return StatusDraft
	}
	return s
}
