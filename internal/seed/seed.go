// Package seed inserts the initial documents a fresh installation needs:
// the settings singleton, one admin user, and a handful of published
// content for manual testing. It is idempotent; every document has a
// fixed id and is upserted.
package seed

import (
	"context"
	"fmt"
	"os"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
	"vertexit-site/internal/identity"
)

// Apply writes the seed documents through the document store.
func Apply(ctx context.Context, store docstore.Client) error {
	if err := seedSettings(ctx, store); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if err := seedAdmin(ctx, store); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	if err := seedContent(ctx, store); err != nil {
		return fmt.Errorf("seed content: %w", err)
	}
	return nil
}

func seedSettings(ctx context.Context, store docstore.Client) error {
	s := domain.Settings{
		ID:              domain.SettingsID,
		SiteName:        "Vertex IT",
		Tagline:         "IT services that scale with you",
		Description:     "Vertex IT designs, builds and runs software for small and mid-size businesses.",
		ContactEmail:    "hello@vertexit.example",
		MetaTitle:       "Vertex IT",
		MetaDescription: "Custom software, cloud and support services.",
	}
	s.Normalize()
	_, err := store.CreateDocument(ctx, "settings", s, s.ID)
	return err
}

func seedAdmin(ctx context.Context, store docstore.Client) error {
	email := envOrDefault("ADMIN_EMAIL", "admin@vertexit.example")
	password := envOrDefault("ADMIN_PASSWORD", "change-me-please")

	hash, err := identity.HashPassword(password)
	if err != nil {
		return err
	}
	u := domain.User{
		ID:           "admin",
		Email:        email,
		Name:         "Administrator",
		PasswordHash: hash,
	}
	u.Normalize()
	_, err = store.CreateDocument(ctx, "users", u, u.ID)
	return err
}

func seedContent(ctx context.Context, store docstore.Client) error {
	services := []domain.Service{
		{
			ID:          "svc-cloud",
			Title:       "Cloud Migration",
			Summary:     "Move workloads to the cloud without downtime.",
			Description: "Assessment, migration planning and execution for AWS and GCP.",
			Status:      domain.StatusPublished,
		},
		{
			ID:          "svc-devops",
			Title:       "Managed DevOps",
			Summary:     "CI/CD pipelines, monitoring and on-call as a service.",
			Description: "We run your delivery platform so your team ships features.",
			Status:      domain.StatusPublished,
		},
	}
	for _, s := range services {
		s.Normalize()
		if _, err := store.CreateDocument(ctx, "services", s, s.ID); err != nil {
			return fmt.Errorf("upsert service %s: %w", s.ID, err)
		}
	}

	job := domain.Job{
		ID:           "job-go-dev",
		Title:        "Go Developer",
		Category:     "Engineering",
		Location:     "Remote",
		Summary:      "Build and operate backend services for our clients.",
		Vacancies:    1,
		ContactEmail: "jobs@vertexit.example",
		Status:       domain.StatusPublished,
	}
	job.Normalize()
	if _, err := store.CreateDocument(ctx, "jobs", job, job.ID); err != nil {
		return fmt.Errorf("upsert job %s: %w", job.ID, err)
	}

	faqs := []domain.FAQ{
		{
			ID:       "faq-billing",
			Question: "How is work billed?",
			Answer:   "Fixed-price projects or a monthly retainer, whichever fits.",
			Order:    1,
			Status:   domain.StatusPublished,
		},
		{
			ID:       "faq-support",
			Question: "Do you offer support contracts?",
			Answer:   "Yes, with response times from next business day to 24/7.",
			Order:    2,
			Status:   domain.StatusPublished,
		},
	}
	for _, f := range faqs {
		f.Normalize()
		if _, err := store.CreateDocument(ctx, "faqs", f, f.ID); err != nil {
			return fmt.Errorf("upsert faq %s: %w", f.ID, err)
		}
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
