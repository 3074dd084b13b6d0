// Package sitegen builds the sitemap, robots.txt, and per-page metadata
// from published content.
package sitegen

import (
	"context"
	"encoding/xml"
	"io"
	"log"
	"net/url"
	"path"
	"strings"
	"time"

	"vertexit-site/internal/domain"
)

// Entry is one sitemap URL.
type Entry struct {
	URL        string
	LastMod    string // YYYY-MM-DD, empty for static pages
	ChangeFreq string
	Priority   float64
}

// ContentFetchers supplies the published-only accessors the sitemap draws
// its dynamic entries from.
type ContentFetchers struct {
	Services  func(ctx context.Context) ([]domain.Service, error)
	Jobs      func(ctx context.Context) ([]domain.Job, error)
	Portfolio func(ctx context.Context) ([]domain.PortfolioItem, error)
}

// Builder assembles sitemap entries. Dynamic reads are best-effort: a
// failing store must never break the sitemap, so failures are logged and
// the static page list stands on its own.
type Builder struct {
	baseURL string
	logger  *log.Logger
	fetch   ContentFetchers
}

func New(baseURL string, logger *log.Logger, fetch ContentFetchers) *Builder {
	return &Builder{baseURL: strings.TrimSuffix(baseURL, "/"), logger: logger, fetch: fetch}
}

// staticPages are the fixed marketing routes, present in every sitemap.
var staticPages = []struct {
	path       string
	changeFreq string
	priority   float64
}{
	{"", "weekly", 1.0},
	{"services", "weekly", 0.9},
	{"pricing", "monthly", 0.8},
	{"career", "weekly", 0.8},
	{"portfolio", "weekly", 0.8},
	{"team", "monthly", 0.6},
	{"contact", "yearly", 0.5},
}

// Entries returns the merged static and dynamic sitemap entries.
func (b *Builder) Entries(ctx context.Context) []Entry {
	entries := make([]Entry, 0, len(staticPages))
	for _, p := range staticPages {
		entries = append(entries, Entry{
			URL:        b.buildURL(p.path),
			ChangeFreq: p.changeFreq,
			Priority:   p.priority,
		})
	}

	if b.fetch.Services != nil {
		if services, err := b.fetch.Services(ctx); err != nil {
			b.logf("sitemap: services read failed, serving static entries only: %v", err)
		} else {
			for _, s := range services {
				entries = append(entries, Entry{
					URL:        b.buildURL("services", s.Slug),
					LastMod:    lastMod(s.UpdatedAt, s.CreatedAt),
					ChangeFreq: "monthly",
					Priority:   0.7,
				})
			}
		}
	}
	if b.fetch.Jobs != nil {
		if jobs, err := b.fetch.Jobs(ctx); err != nil {
			b.logf("sitemap: jobs read failed, serving static entries only: %v", err)
		} else {
			for _, j := range jobs {
				entries = append(entries, Entry{
					URL:        b.buildURL("career", j.Slug),
					LastMod:    lastMod(j.UpdatedAt, j.CreatedAt),
					ChangeFreq: "weekly",
					Priority:   0.7,
				})
			}
		}
	}
	if b.fetch.Portfolio != nil {
		if items, err := b.fetch.Portfolio(ctx); err != nil {
			b.logf("sitemap: portfolio read failed, serving static entries only: %v", err)
		} else {
			for _, p := range items {
				entries = append(entries, Entry{
					URL:        b.buildURL("portfolio", p.ID),
					LastMod:    lastMod(p.UpdatedAt, p.CreatedAt),
					ChangeFreq: "monthly",
					Priority:   0.6,
				})
			}
		}
	}
	return entries
}

func (b *Builder) logf(format string, args ...any) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
	}
}

func (b *Builder) buildURL(segments ...string) string {
	u, err := url.Parse(b.baseURL)
	if err != nil {
		return b.baseURL
	}
	u.Path = path.Join(append([]string{u.Path}, segments...)...)
	return u.String()
}

func lastMod(updated, created time.Time) string {
	t := updated
	if t.IsZero() {
		t = created
	}
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

// WriteXML renders entries as a sitemaps.org urlset.
func WriteXML(w io.Writer, entries []Entry) error {
	urls := make([]xmlURL, 0, len(entries))
	for _, e := range entries {
		urls = append(urls, xmlURL{
			Loc:        e.URL,
			LastMod:    e.LastMod,
			ChangeFreq: e.ChangeFreq,
			Priority:   e.Priority,
		})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}

// Robots renders robots.txt, keeping crawlers out of the admin area.
func Robots(baseURL string) string {
	base := strings.TrimSuffix(baseURL, "/")
	return "User-agent: *\nAllow: /\nDisallow: /api/v1/admin/\n\nSitemap: " + base + "/sitemap.xml\n"
}
