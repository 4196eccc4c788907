// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/agency-site-api/internal/app/form"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/contact"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/newsletter"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/outreach"
	"github.com/jsamuelsen11/agency-site-api/internal/domain/portfolio"
)

// ContactResponse represents a stored contact submission.
type ContactResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Service   string `json:"service"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ContactListResponse represents a page of contact submissions.
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Count    int               `json:"count"`
}

// ToContactResponse converts a domain submission to its HTTP shape.
func ToContactResponse(s *contact.Submission) ContactResponse {
	return ContactResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Email:     s.Email,
		Service:   string(s.Service),
		Message:   s.Message,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

// ToContactListResponse converts a slice of submissions.
func ToContactListResponse(subs []contact.Submission) ContactListResponse {
	items := make([]ContactResponse, len(subs))
	for i := range subs {
		items[i] = ToContactResponse(&subs[i])
	}
	return ContactListResponse{Contacts: items, Count: len(items)}
}

// SubscriberResponse represents a newsletter subscriber.
type SubscriberResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Status       string `json:"status"`
	SubscribedAt string `json:"subscribed_at"`
}

// SubscriberListResponse represents a page of subscribers.
type SubscriberListResponse struct {
	Subscribers []SubscriberResponse `json:"subscribers"`
	Count       int                  `json:"count"`
}

// ToSubscriberResponse converts a domain subscriber.
func ToSubscriberResponse(s *newsletter.Subscriber) SubscriberResponse {
	return SubscriberResponse{
		ID:           s.ID.String(),
		Email:        s.Email,
		Status:       string(s.Status),
		SubscribedAt: s.SubscribedAt.Format(time.RFC3339),
	}
}

// ToSubscriberListResponse converts a slice of subscribers.
func ToSubscriberListResponse(subs []newsletter.Subscriber) SubscriberListResponse {
	items := make([]SubscriberResponse, len(subs))
	for i := range subs {
		items[i] = ToSubscriberResponse(&subs[i])
	}
	return SubscriberListResponse{Subscribers: items, Count: len(items)}
}

// ProjectResponse represents a portfolio project.
type ProjectResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Category  string   `json:"category"`
	Summary   string   `json:"summary"`
	ImageURL  string   `json:"image_url"`
	Tags      []string `json:"tags"`
	Featured  bool     `json:"featured"`
	SortOrder int      `json:"sort_order"`
}

// ProjectListResponse represents a list of portfolio projects.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain project.
func ToProjectResponse(p *portfolio.Project) ProjectResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProjectResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Slug:      p.Slug,
		Category:  p.Category,
		Summary:   p.Summary,
		ImageURL:  p.ImageURL,
		Tags:      tags,
		Featured:  p.Featured,
		SortOrder: p.SortOrder,
	}
}

// ToProjectListResponse converts a slice of projects.
func ToProjectListResponse(projects []portfolio.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return ProjectListResponse{Projects: items, Count: len(items)}
}

// TestimonialResponse represents a client testimonial.
type TestimonialResponse struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Quote     string `json:"quote"`
	Rating    int    `json:"rating"`
	SortOrder int    `json:"sort_order"`
}

// TestimonialListResponse represents a list of testimonials.
type TestimonialListResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	Count        int                   `json:"count"`
}

// ToTestimonialResponse converts a domain testimonial.
func ToTestimonialResponse(t *portfolio.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:        t.ID.String(),
		Author:    t.Author,
		Role:      t.Role,
		Company:   t.Company,
		Quote:     t.Quote,
		Rating:    t.Rating,
		SortOrder: t.SortOrder,
	}
}

// ToTestimonialListResponse converts a slice of testimonials.
func ToTestimonialListResponse(ts []portfolio.Testimonial) TestimonialListResponse {
	items := make([]TestimonialResponse, len(ts))
	for i := range ts {
		items[i] = ToTestimonialResponse(&ts[i])
	}
	return TestimonialListResponse{Testimonials: items, Count: len(items)}
}

// ShowcaseResponse is the landing page's portfolio section.
type ShowcaseResponse struct {
	Projects     []ProjectResponse     `json:"projects"`
	Testimonials []TestimonialResponse `json:"testimonials"`
}

// ToShowcaseResponse converts a domain showcase.
func ToShowcaseResponse(s *portfolio.Showcase) ShowcaseResponse {
	return ShowcaseResponse{
		Projects:     ToProjectListResponse(s.Projects).Projects,
		Testimonials: ToTestimonialListResponse(s.Testimonials).Testimonials,
	}
}

// BannerResponse is the status line above a form.
type BannerResponse struct {
	Tone        string `json:"tone"`
	Text        string `json:"text"`
	Dismissable bool   `json:"dismissable"`
}

// FormViewResponse is everything the page needs to render a form.
type FormViewResponse struct {
	ID            string            `json:"id"`
	Kind          string            `json:"kind"`
	State         string            `json:"state"`
	Values        map[string]string `json:"values"`
	InputsEnabled bool              `json:"inputs_enabled"`
	SubmitEnabled bool              `json:"submit_enabled"`
	Busy          bool              `json:"busy"`
	Banner        *BannerResponse   `json:"banner,omitempty"`
}

// ToFormViewResponse converts a presented form view.
func ToFormViewResponse(v form.View) FormViewResponse {
	resp := FormViewResponse{
		ID:            v.ID.String(),
		Kind:          string(v.Kind),
		State:         string(v.State),
		Values:        v.Values,
		InputsEnabled: v.InputsEnabled,
		SubmitEnabled: v.SubmitEnabled,
		Busy:          v.Busy,
	}
	if v.Banner != nil {
		resp.Banner = &BannerResponse{
			Tone:        v.Banner.Tone,
			Text:        v.Banner.Text,
			Dismissable: v.Banner.Dismissable,
		}
	}
	return resp
}

// OutreachLinksResponse holds the hand-off links for the contact section.
type OutreachLinksResponse struct {
	Mailto string `json:"mailto"`
	Tel    string `json:"tel,omitempty"`
}

// ToOutreachLinksResponse converts outreach links.
func ToOutreachLinksResponse(l outreach.Links) OutreachLinksResponse {
	return OutreachLinksResponse{Mailto: l.Mailto, Tel: l.Tel}
}

// ModalResponse reports a booking modal's state.
type ModalResponse struct {
	ID   string `json:"id"`
	Open bool   `json:"open"`
}

// SchedulingEventResponse tells the page how to react to a widget event.
type SchedulingEventResponse struct {
	Event      string `json:"event"`
	Known      bool   `json:"known"`
	CloseModal bool   `json:"close_modal"`
}
