// Package transcript holds the ordered, append-only list of chat entries.
package transcript

import (
	"github.com/google/uuid"

	"github.com/diogo/mindmate/internal/models"
)

// EntryID is the handle returned when an entry is appended
type EntryID = uuid.UUID

// Entry is a single rendered message in the transcript
type Entry struct {
	ID          EntryID
	Text        string
	Sender      models.Sender
	Placeholder bool
}

// Message returns the entry as a plain message
func (e Entry) Message() models.Message {
	return models.Message{Text: e.Text, Sender: e.Sender}
}

// Transcript is an insertion-ordered list of entries. Entries are only ever
// appended, except placeholders which are removed by handle.
//
// A Transcript is not safe for concurrent use; it belongs to the UI loop.
type Transcript struct {
	entries  []Entry
	revision uint64
}

// New creates an empty transcript
func New() *Transcript {
	return &Transcript{}
}

// Append adds an entry at the end and returns its handle
func (t *Transcript) Append(text string, sender models.Sender) EntryID {
	return t.append(Entry{Text: text, Sender: sender})
}

// AppendPlaceholder adds the transient placeholder entry and returns its handle
func (t *Transcript) AppendPlaceholder() EntryID {
	return t.append(Entry{
		Text:        models.PlaceholderText,
		Sender:      models.SenderAssistant,
		Placeholder: true,
	})
}

func (t *Transcript) append(e Entry) EntryID {
	e.ID = uuid.New()
	t.entries = append(t.entries, e)
	t.revision++
	return e.ID
}

// Remove deletes the entry with the given handle. It reports whether an
// entry was removed.
func (t *Transcript) Remove(id EntryID) bool {
	for i, e := range t.entries {
		if e.ID == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			t.revision++
			return true
		}
	}
	return false
}

// Find returns the entry with the given handle
func (t *Transcript) Find(id EntryID) (Entry, bool) {
	for _, e := range t.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of all entries in order
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Last returns the newest entry
func (t *Transcript) Last() (Entry, bool) {
	if len(t.entries) == 0 {
		return Entry{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// LastFrom returns the newest non-placeholder entry from sender
func (t *Transcript) LastFrom(sender models.Sender) (Entry, bool) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if e := t.entries[i]; e.Sender == sender && !e.Placeholder {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of entries
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Placeholders returns the number of pending placeholder entries
func (t *Transcript) Placeholders() int {
	n := 0
	for _, e := range t.entries {
		if e.Placeholder {
			n++
		}
	}
	return n
}

// Revision changes every time the transcript is mutated. Views compare it to
// decide when to re-render and scroll to the newest entry.
func (t *Transcript) Revision() uint64 {
	return t.revision
}
