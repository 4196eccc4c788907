// Package outreach builds the hand-off URIs behind the site's "email us" and
// "call us" links. The user agent opens them; nothing is tracked afterward.
package outreach

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
)

// MailtoURI returns a mailto: URI for address with an optional prefilled
// subject and body.
func MailtoURI(address, subject, body string) (string, error) {
	address = strings.TrimSpace(address)
	if !domain.IsEmail(address) {
		return "", &domain.ValidationError{
			Message: domain.MsgInvalidEmail,
			Fields:  map[string]string{"email": domain.MsgInvalidEmail},
		}
	}

	var params []string
	if subject != "" {
		params = append(params, "subject="+escape(subject))
	}
	if body != "" {
		params = append(params, "body="+escape(body))
	}

	uri := "mailto:" + address
	if len(params) > 0 {
		uri += "?" + strings.Join(params, "&")
	}
	return uri, nil
}

// TelURI returns a tel: URI for number. Spaces, dots, dashes and parentheses
// are dropped; a single leading '+' is kept.
func TelURI(number string) (string, error) {
	number = strings.TrimSpace(number)

	var b strings.Builder
	for i, r := range number {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", phoneError(fmt.Sprintf("invalid character %q", r))
		}
	}

	digits := strings.TrimPrefix(b.String(), "+")
	if len(digits) < 3 {
		return "", phoneError("too short")
	}
	return "tel:" + b.String(), nil
}

// Links is the pair of contact links rendered in the site footer.
type Links struct {
	Mailto string
	Tel    string
}

// BuildLinks returns both links for the agency's published contact details.
func BuildLinks(email, phone, subject string) (Links, error) {
	mailto, err := MailtoURI(email, subject, "")
	if err != nil {
		return Links{}, fmt.Errorf("mailto: %w", err)
	}
	tel, err := TelURI(phone)
	if err != nil {
		return Links{}, fmt.Errorf("tel: %w", err)
	}
	return Links{Mailto: mailto, Tel: tel}, nil
}

// escape percent-encodes v for a mailto header value. Spaces become %20
// rather than '+', which mail clients would show literally.
func escape(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

func phoneError(msg string) error {
	return &domain.ValidationError{Fields: map[string]string{"phone": msg}}
}
