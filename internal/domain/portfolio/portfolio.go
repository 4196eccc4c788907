// Package portfolio holds the read-only showcase content: past projects and
// client testimonials.
package portfolio

import (
	"fmt"

	"github.com/google/uuid"
)

// Project is a portfolio entry shown in the work gallery.
type Project struct {
	ID        uuid.UUID
	Title     string
	Slug      string
	Category  string
	Summary   string
	ImageURL  string
	Tags      []string
	Featured  bool
	SortOrder int
}

// Testimonial is a client quote.
type Testimonial struct {
	ID        uuid.UUID
	Author    string
	Role      string
	Company   string
	Quote     string
	Rating    int
	SortOrder int
}

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// CheckRating returns an error if r is outside MinRating..MaxRating.
func CheckRating(r int) error {
	if r < MinRating || r > MaxRating {
		return fmt.Errorf("rating must be %d-%d, got %d", MinRating, MaxRating, r)
	}
	return nil
}

// ProjectFilter narrows the project list. Zero values mean no filter.
type ProjectFilter struct {
	Category     string
	FeaturedOnly bool
}

// Showcase is everything the landing page renders below the hero.
type Showcase struct {
	Projects     []Project
	Testimonials []Testimonial
}
