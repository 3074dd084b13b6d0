package domain

import "strings"

// Slugify converts a title to a URL-safe slug: lower-cased, alphanumeric
// runs separated by single dashes.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	dashed := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dashed = false
		default:
			if !dashed && b.Len() > 0 {
				b.WriteByte('-')
				dashed = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// NormalizeSlug trims and lower-cases an explicit slug, falling back to a
// slugified title when the slug is empty.
func NormalizeSlug(slug, title string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return Slugify(title)
	}
	return slug
}

// trimList trims every entry and drops the ones that end up empty.
func trimList(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
