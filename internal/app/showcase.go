package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
	"github.com/jsamuelsen11/agency-site-api/internal/ports"
)

// Compile-time check that Showcase implements ports.ShowcaseService.
var _ ports.ShowcaseService = (*Showcase)(nil)

// Showcase implements ports.ShowcaseService over a read-only store.
type Showcase struct {
	store  ports.ShowcaseStore
	logger *slog.Logger
}

// NewShowcase creates a Showcase.
func NewShowcase(store ports.ShowcaseStore, logger *slog.Logger) *Showcase {
	return &Showcase{store: store, logger: logger}
}

// Showcase fetches projects and testimonials concurrently. The first
// failure cancels the other fetch.
func (s *Showcase) Showcase(ctx context.Context) (*portfolio.Showcase, error) {
	var out portfolio.Showcase

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		projects, err := s.store.ListProjects(gctx, portfolio.ProjectFilter{})
		out.Projects = projects
		return err
	})
	g.Go(func() error {
		testimonials, err := s.store.ListTestimonials(gctx)
		out.Testimonials = testimonials
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to load showcase",
			slog.String("operation", "Showcase"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &out, nil
}

// ListProjects returns portfolio projects narrowed by filter.
func (s *Showcase) ListProjects(ctx context.Context, filter portfolio.ProjectFilter) ([]portfolio.Project, error) {
	projects, err := s.store.ListProjects(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "ListProjects"),
			slog.String("category", filter.Category),
			slog.Any("error", err),
		)
		return nil, err
	}
	return projects, nil
}

// ListTestimonials returns client testimonials.
func (s *Showcase) ListTestimonials(ctx context.Context) ([]portfolio.Testimonial, error) {
	testimonials, err := s.store.ListTestimonials(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list testimonials",
			slog.String("operation", "ListTestimonials"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return testimonials, nil
}
