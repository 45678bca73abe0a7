// Package chat dispatches user messages to the reply service and renders
// the outcome into a transcript.
package chat

import "github.com/diogo/mindmate/internal/models"

// Mode parameterizes one send-and-render exchange
type Mode struct {
	Name string
	// Placeholder shows the transient "..." entry while the request is pending.
	Placeholder bool
	// CrisisNotice appends the emergency-services notice after a crisis reply.
	CrisisNotice bool
	// Display maps the outgoing text to what the transcript shows. Nil shows it as is.
	Display func(text string) string
}

// display returns the transcript text for an outgoing message
func (m Mode) display(text string) string {
	if m.Display == nil {
		return text
	}
	return m.Display(text)
}

// TypedMode is used for text the user typed
var TypedMode = Mode{
	Name:         "typed",
	Placeholder:  true,
	CrisisNotice: true,
}

// MoodMode is used for mood shortcuts
var MoodMode = Mode{
	Name:    "mood",
	Display: models.MoodMessage,
}
