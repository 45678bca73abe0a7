package models

import "strings"

// QuickAction is a canned self-help prompt that needs no network call
type QuickAction struct {
	ID    string
	Title string
	Text  string
}

// Quick action identifiers
const (
	ActionBreathe = "breathe"
	ActionGround  = "ground"
	ActionSmall   = "small"
)

var quickActions = []QuickAction{
	{
		ID:    ActionBreathe,
		Title: "Breathe",
		Text:  "Let's do one round of breathing together: inhale 4 — hold 4 — exhale 6. Follow my count: Inhale... 1,2,3,4...",
	},
	{
		ID:    ActionGround,
		Title: "Ground",
		Text:  "Grounding (5-4-3-2-1): Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste. Start when ready.",
	},
	{
		ID:    ActionSmall,
		Title: "Small action",
		Text:  "Small action ideas: 1) Drink a glass of water. 2) Step outside for 5 minutes. 3) Text one friend. Which one feels doable?",
	},
}

// QuickActions returns the fixed quick actions in display order
func QuickActions() []QuickAction {
	out := make([]QuickAction, len(quickActions))
	copy(out, quickActions)
	return out
}

// QuickActionByID looks up a quick action, ignoring case and surrounding space
func QuickActionByID(id string) (QuickAction, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, a := range quickActions {
		if a.ID == id {
			return a, true
		}
	}
	return QuickAction{}, false
}

// Mood is a one-tap shortcut that forwards a feeling to the reply service
type Mood struct {
	Label string
	Emoji string
}

var moods = []Mood{
	{Label: "happy", Emoji: "😊"},
	{Label: "sad", Emoji: "😢"},
	{Label: "anxious", Emoji: "😟"},
	{Label: "lonely", Emoji: "🫂"},
	{Label: "tired", Emoji: "😴"},
}

// Moods returns the mood shortcuts in display order
func Moods() []Mood {
	out := make([]Mood, len(moods))
	copy(out, moods)
	return out
}

// MoodByLabel looks up a mood, ignoring case and surrounding space
func MoodByLabel(label string) (Mood, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, m := range moods {
		if m.Label == label {
			return m, true
		}
	}
	return Mood{}, false
}

// MoodMessage is the transcript text shown when a mood is picked
func MoodMessage(label string) string {
	return "I'm feeling " + label
}
