// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/contact, domain/newsletter,
// domain/portfolio). This root package holds sentinel errors, the submission
// Validator, and the user-facing messages shown by the site's forms.
package domain
