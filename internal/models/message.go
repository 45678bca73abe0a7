package models

// Sender identifies who authored a transcript entry
type Sender string

const (
	SenderUser      Sender = "you"
	SenderAssistant Sender = "ai"
)

// Label returns the display label for the sender
func (s Sender) Label() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderAssistant:
		return "MindMate"
	default:
		return string(s)
	}
}

// Message represents a single chat message. It only lives as long as the
// transcript that shows it.
type Message struct {
	Text   string
	Sender Sender
}
