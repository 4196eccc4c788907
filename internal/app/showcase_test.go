package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
	"github.com/jsamuelsen11/agency-site-api/mocks"
)

func TestShowcase_Showcase(t *testing.T) {
	t.Parallel()

	t.Run("combines projects and testimonials", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockShowcaseStore(t)
		svc := NewShowcase(store, discardLogger())

		store.EXPECT().ListProjects(mock.Anything, portfolio.ProjectFilter{}).
			Return([]portfolio.Project{{Slug: "harbor-coffee"}, {Slug: "atlas"}}, nil).Once()
		store.EXPECT().ListTestimonials(mock.Anything).
			Return([]portfolio.Testimonial{{Author: "Maya Chen", Rating: 5}}, nil).Once()

		got, err := svc.Showcase(context.Background())
		if err != nil {
			t.Fatalf("Showcase() error = %v, want nil", err)
		}
		if len(got.Projects) != 2 || len(got.Testimonials) != 1 {
			t.Errorf("Showcase() = %d projects, %d testimonials; want 2, 1",
				len(got.Projects), len(got.Testimonials))
		}
	})

	t.Run("first failure wins", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockShowcaseStore(t)
		svc := NewShowcase(store, discardLogger())

		store.EXPECT().ListProjects(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable).Once()
		store.EXPECT().ListTestimonials(mock.Anything).
			RunAndReturn(func(ctx context.Context) ([]portfolio.Testimonial, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}).Once()

		_, err := svc.Showcase(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Showcase() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestShowcase_ListProjects(t *testing.T) {
	t.Parallel()
	store := mocks.NewMockShowcaseStore(t)
	svc := NewShowcase(store, discardLogger())

	filter := portfolio.ProjectFilter{Category: "branding", FeaturedOnly: true}
	store.EXPECT().ListProjects(mock.Anything, filter).Return([]portfolio.Project{{Slug: "harbor-coffee"}}, nil).Once()

	got, err := svc.ListProjects(context.Background(), filter)
	if err != nil {
		t.Fatalf("ListProjects() error = %v, want nil", err)
	}
	if got[0].Slug != "harbor-coffee" {
		t.Errorf("Slug = %q, want harbor-coffee", got[0].Slug)
	}
}

func TestShowcase_ListTestimonials_Error(t *testing.T) {
	t.Parallel()
	store := mocks.NewMockShowcaseStore(t)
	svc := NewShowcase(store, discardLogger())

	store.EXPECT().ListTestimonials(mock.Anything).Return(nil, domain.ErrUnavailable).Once()

	if _, err := svc.ListTestimonials(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("ListTestimonials() error = %v, want ErrUnavailable", err)
	}
}
