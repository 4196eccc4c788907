package form

import "github.com/google/uuid"

// Success banner text per form kind.
const (
	MsgContactSuccess    = "Thanks for reaching out! We'll get back to you within 24 hours."
	MsgNewsletterSuccess = "Thanks for subscribing!"
)

// Banner tones.
const (
	ToneSuccess = "success"
	ToneError   = "error"
)

// Banner is the status line shown above a form.
type Banner struct {
	Tone        string
	Text        string
	Dismissable bool
}

// View is what the page renders for a form.
type View struct {
	ID            uuid.UUID
	Kind          Kind
	State         State
	Values        map[string]string
	InputsEnabled bool
	SubmitEnabled bool
	Busy          bool
	Banner        *Banner
}

// Present maps a snapshot to its rendering. It has no side effects.
func Present(s Snapshot) View {
	v := View{
		ID:            s.ID,
		Kind:          s.Kind,
		State:         s.State,
		Values:        s.Values,
		InputsEnabled: true,
		SubmitEnabled: true,
	}

	switch s.State {
	case StateSubmitting:
		v.InputsEnabled = false
		v.SubmitEnabled = false
		v.Busy = true
	case StateSuccess:
		v.Banner = &Banner{Tone: ToneSuccess, Text: successText(s.Kind), Dismissable: true}
	case StateError:
		if s.Message != "" {
			v.Banner = &Banner{Tone: ToneError, Text: s.Message}
		}
	}
	return v
}

func successText(k Kind) string {
	if k == KindNewsletter {
		return MsgNewsletterSuccess
	}
	return MsgContactSuccess
}
