package chat

import (
	"errors"
	"fmt"

	"github.com/diogo/mindmate/internal/models"
	"github.com/diogo/mindmate/internal/transcript"
)

// Errors returned by the quick-action panel
var (
	ErrUnknownAction = errors.New("unknown quick action")
	ErrUnknownMood   = errors.New("unknown mood")
)

// Panel exposes the fixed quick actions and mood shortcuts
type Panel struct {
	dispatcher *Dispatcher
}

// NewPanel creates a panel bound to d
func NewPanel(d *Dispatcher) *Panel {
	return &Panel{dispatcher: d}
}

// Actions returns the quick actions in display order
func (p *Panel) Actions() []models.QuickAction {
	return models.QuickActions()
}

// Moods returns the mood shortcuts in display order
func (p *Panel) Moods() []models.Mood {
	return models.Moods()
}

// Trigger appends the canned message for a quick action. No request is made.
func (p *Panel) Trigger(id string) (transcript.EntryID, error) {
	action, ok := models.QuickActionByID(id)
	if !ok {
		return transcript.EntryID{}, fmt.Errorf("%w: %s", ErrUnknownAction, id)
	}
	return p.dispatcher.transcript.Append(action.Text, models.SenderAssistant), nil
}

// Mood shows the mood as a user message and starts its request
func (p *Panel) Mood(label string) (*Pending, error) {
	mood, ok := models.MoodByLabel(label)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMood, label)
	}
	pending, ok := p.dispatcher.Begin(mood.Label, MoodMode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMood, label)
	}
	return pending, nil
}
