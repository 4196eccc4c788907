package domain

import (
	"regexp"
	"strings"
)

// emailPattern accepts X@Y.Z where no part contains whitespace or '@'.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.\S+$`)

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateContact checks a contact form submission. Required fields are
// checked first; the email format only once every field is present.
// Returns a *ValidationError or nil.
func ValidateContact(name, email, message string) error {
	return validate(
		requiredField{"name", name},
		requiredField{"email", email},
		requiredField{"message", message},
	)
}

// ValidateSubscriber checks a newsletter signup.
func ValidateSubscriber(email string) error {
	return validate(requiredField{"email", email})
}

type requiredField struct {
	name  string
	value string
}

func validate(fields ...requiredField) error {
	missing := make(map[string]string)
	var email string
	for _, f := range fields {
		v := strings.TrimSpace(f.value)
		if v == "" {
			missing[f.name] = MsgRequired
			continue
		}
		if f.name == "email" {
			email = v
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Message: MsgMissingRequired, Fields: missing}
	}
	if !IsEmail(email) {
		return &ValidationError{
			Message: MsgInvalidEmail,
			Fields:  map[string]string{"email": MsgInvalidEmail},
		}
	}
	return nil
}

// MsgRequired is the per-field rule text for an empty required field.
const MsgRequired = "required"
