package testimonials

import (
	"context"
	"testing"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

func TestSave_ClampsRating(t *testing.T) {
	ctx := context.Background()
	repo := New(docstore.NewMemory())

	cases := []struct {
		submit int
		want   int
	}{
		{9, 5},
		{7, 5},
		{0, 1},
		{3, 3},
	}
	for _, tc := range cases {
		id, err := repo.Save(ctx, domain.Testimonial{Author: "A", Quote: "Great work", Rating: tc.submit})
		if err != nil {
			t.Fatalf("save rating %d: %v", tc.submit, err)
		}

		all, err := repo.Fetch(ctx)
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		var found *domain.Testimonial
		for i := range all {
			if all[i].ID == id {
				found = &all[i]
			}
		}
		if found == nil {
			t.Fatalf("saved testimonial %s missing from fetch", id)
		}
		if found.Rating != tc.want {
			t.Fatalf("rating %d: expected stored %d, got %d", tc.submit, tc.want, found.Rating)
		}
	}
}

func TestFetchPublished_FiltersDrafts(t *testing.T) {
	ctx := context.Background()
	repo := New(docstore.NewMemory())

	repo.Save(ctx, domain.Testimonial{Author: "A", Quote: "q", Rating: 5, Status: domain.StatusPublished})
	repo.Save(ctx, domain.Testimonial{Author: "B", Quote: "q", Rating: 4})

	published, err := repo.FetchPublished(ctx)
	if err != nil {
		t.Fatalf("fetch published: %v", err)
	}
	if len(published) != 1 || published[0].Author != "A" {
		t.Fatalf("unexpected published set %+v", published)
	}
}
