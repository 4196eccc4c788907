package contact

import "fmt"

// ServiceTag is the kind of engagement a visitor is asking about.
type ServiceTag string

const (
	ServiceWebDesign        ServiceTag = "web-design"
	ServiceWebDevelopment   ServiceTag = "web-development"
	ServiceBranding         ServiceTag = "branding"
	ServiceDigitalMarketing ServiceTag = "digital-marketing"
	ServiceSEO              ServiceTag = "seo"
	ServiceConsulting       ServiceTag = "consulting"
	ServiceOther            ServiceTag = "other"
)

// ServiceTags lists every tag in the order the site's dropdown shows them.
func ServiceTags() []ServiceTag {
	return []ServiceTag{
		ServiceWebDesign,
		ServiceWebDevelopment,
		ServiceBranding,
		ServiceDigitalMarketing,
		ServiceSEO,
		ServiceConsulting,
		ServiceOther,
	}
}

// IsValid returns true if the tag is one of the defined constants.
func (t ServiceTag) IsValid() bool {
	switch t {
	case ServiceWebDesign, ServiceWebDevelopment, ServiceBranding,
		ServiceDigitalMarketing, ServiceSEO, ServiceConsulting, ServiceOther:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t ServiceTag) String() string {
	return string(t)
}

// ParseServiceTag converts s to a ServiceTag, rejecting unknown values.
func ParseServiceTag(s string) (ServiceTag, error) {
	t := ServiceTag(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown service tag %q", s)
	}
	return t, nil
}
