package sitegen

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vertexit-site/internal/domain"
)

func TestEntries_StaticOnlyWhenEveryReadFails(t *testing.T) {
	boom := errors.New("store down")
	b := New("https://vertexit.dev", nil, ContentFetchers{
		Services:  func(context.Context) ([]domain.Service, error) { return nil, boom },
		Jobs:      func(context.Context) ([]domain.Job, error) { return nil, boom },
		Portfolio: func(context.Context) ([]domain.PortfolioItem, error) { return nil, boom },
	})

	entries := b.Entries(context.Background())

	if len(entries) != len(staticPages) {
		t.Fatalf("expected exactly the %d static entries, got %d", len(staticPages), len(entries))
	}
	if entries[0].URL != "https://vertexit.dev" {
		t.Fatalf("unexpected home entry %+v", entries[0])
	}
}

func TestEntries_MergesDynamicContent(t *testing.T) {
	updated := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	b := New("https://vertexit.dev/", nil, ContentFetchers{
		Services: func(context.Context) ([]domain.Service, error) {
			return []domain.Service{{Slug: "cloud-migration", UpdatedAt: updated}}, nil
		},
		Jobs: func(context.Context) ([]domain.Job, error) {
			return []domain.Job{{Slug: "go-engineer", UpdatedAt: updated}}, nil
		},
		Portfolio: func(context.Context) ([]domain.PortfolioItem, error) {
			return nil, errors.New("partial outage")
		},
	})

	entries := b.Entries(context.Background())

	if len(entries) != len(staticPages)+2 {
		t.Fatalf("expected %d entries, got %d", len(staticPages)+2, len(entries))
	}
	var foundJob bool
	for _, e := range entries {
		if e.URL == "https://vertexit.dev/career/go-engineer" {
			foundJob = true
			if e.LastMod != "2026-03-14" {
				t.Fatalf("expected lastmod 2026-03-14, got %q", e.LastMod)
			}
		}
	}
	if !foundJob {
		t.Fatalf("job entry missing from %+v", entries)
	}
}

func TestWriteXML(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXML(&buf, []Entry{
		{URL: "https://vertexit.dev", ChangeFreq: "weekly", Priority: 1.0},
		{URL: "https://vertexit.dev/career/go-engineer", LastMod: "2026-03-14", ChangeFreq: "weekly", Priority: 0.7},
	})
	if err != nil {
		t.Fatalf("write xml: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		"<loc>https://vertexit.dev/career/go-engineer</loc>",
		"<lastmod>2026-03-14</lastmod>",
		"<changefreq>weekly</changefreq>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRobots(t *testing.T) {
	out := Robots("https://vertexit.dev/")
	if !strings.Contains(out, "Disallow: /api/v1/admin/") {
		t.Fatalf("robots must exclude the admin area:\n%s", out)
	}
	if !strings.Contains(out, "Sitemap: https://vertexit.dev/sitemap.xml") {
		t.Fatalf("robots must advertise the sitemap:\n%s", out)
	}
}

func TestMetaFor(t *testing.T) {
	s := &domain.Settings{
		SiteName:        "Vertex IT",
		MetaDescription: "Software services",
	}

	home := MetaFor(s, "https://vertexit.dev", "", "", "")
	if home.Title != "Vertex IT" || home.OGType != "website" {
		t.Fatalf("unexpected home meta %+v", home)
	}
	if home.URL != "https://vertexit.dev" {
		t.Fatalf("unexpected canonical %q", home.URL)
	}

	job := MetaFor(s, "https://vertexit.dev", "/career/go-engineer", "Go Engineer", "Remote role")
	if job.Title != "Go Engineer | Vertex IT" {
		t.Fatalf("unexpected title %q", job.Title)
	}
	if job.Description != "Remote role" || job.OGType != "article" {
		t.Fatalf("unexpected meta %+v", job)
	}
	if job.URL != "https://vertexit.dev/career/go-engineer" {
		t.Fatalf("unexpected canonical %q", job.URL)
	}
}

func TestMetaFor_NilSettings(t *testing.T) {
	m := MetaFor(nil, "https://vertexit.dev", "services", "Services", "")
	if m.Title != "Services" {
		t.Fatalf("unexpected title %q", m.Title)
	}
}
