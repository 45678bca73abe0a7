// Package models contains data types and fixed texts for the MindMate client.
package models

// ChatPath is the reply service route, relative to the configured endpoint
const ChatPath = "/chat"

// DefaultEndpoint is the reply service base URL used when none is configured
const DefaultEndpoint = "http://localhost:3000"

// Fixed transcript texts
const (
	Greeting = "Hi — I'm MindMate. I'm here to listen. Tell me what's on your mind."

	// PlaceholderText marks the transient entry shown while a reply is pending
	PlaceholderText = "..."

	CrisisNotice   = "If you are in immediate danger, call local emergency services now. See hotlines below."
	GenericFailure = "Sorry — something went wrong. Try again."
	NetworkFailure = "Network error. Please try again later."
)

// DarkPreferenceKey is the storage key holding the display preference
const DarkPreferenceKey = "mindmate_dark"

// DefaultHeaders returns the headers sent with every reply request
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   "mindmate-cli",
	}
}
