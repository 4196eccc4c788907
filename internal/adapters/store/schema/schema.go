// Package schema names the tables and columns shared by every store driver,
// so the SQL drivers and the REST driver select the same shape.
package schema

import "strings"

// Tables.
const (
	Contacts              = "contacts"
	NewsletterSubscribers = "newsletter_subscribers"
	PortfolioProjects     = "portfolio_projects"
	Testimonials          = "testimonials"
)

// Column lists in scan order.
var (
	ContactColumns = []string{
		"id", "name", "email", "service", "message", "status", "created_at", "updated_at",
	}
	SubscriberColumns = []string{
		"id", "email", "status", "subscribed_at",
	}
	ProjectColumns = []string{
		"id", "title", "slug", "category", "summary", "image_url", "tags", "featured", "sort_order",
	}
	TestimonialColumns = []string{
		"id", "author", "role", "company", "quote", "rating", "sort_order",
	}
)

// List joins columns for a SELECT list or RETURNING clause.
func List(columns []string) string {
	return strings.Join(columns, ", ")
}

// CSV joins columns for a PostgREST select parameter.
func CSV(columns []string) string {
	return strings.Join(columns, ",")
}
