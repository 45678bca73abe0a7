package preference

import (
	"fmt"
	"sync"

	"github.com/diogo/mindmate/internal/models"
)

// Stored values for the dark preference
const (
	ValueDark  = "1"
	ValueLight = "0"
)

// Toggle glyphs: the glyph shows the mode a toggle would switch to
const (
	GlyphDark  = "☀️"
	GlyphLight = "🌙"
)

// ApplyFunc makes a display mode visible
type ApplyFunc func(dark bool)

// DisplayPreference is the process-wide light/dark setting. The held value
// is the source of truth; the UI is only told about it through ApplyFunc.
type DisplayPreference struct {
	mu      sync.Mutex
	storage Storage
	apply   ApplyFunc
	dark    bool
}

// New creates a preference backed by storage. apply may be nil.
func New(storage Storage, apply ApplyFunc) *DisplayPreference {
	return &DisplayPreference{storage: storage, apply: apply}
}

// ParseValue maps a stored value to the dark flag. Only "1" means dark.
func ParseValue(value string, ok bool) bool {
	return ok && value == ValueDark
}

// FormatValue maps the dark flag to its stored value
func FormatValue(dark bool) string {
	if dark {
		return ValueDark
	}
	return ValueLight
}

// Load reads the stored value once and applies it. A missing or unreadable
// value applies light mode; the read error is still returned.
func (p *DisplayPreference) Load() (bool, error) {
	value, ok, err := p.storage.Get(models.DarkPreferenceKey)
	dark := err == nil && ParseValue(value, ok)

	p.mu.Lock()
	p.dark = dark
	p.mu.Unlock()
	p.notify(dark)

	if err != nil {
		return false, fmt.Errorf("failed to load display preference: %w", err)
	}
	return dark, nil
}

// Set applies the mode and persists it
func (p *DisplayPreference) Set(dark bool) error {
	p.mu.Lock()
	p.dark = dark
	p.mu.Unlock()
	p.notify(dark)

	if err := p.storage.Set(models.DarkPreferenceKey, FormatValue(dark)); err != nil {
		return fmt.Errorf("failed to save display preference: %w", err)
	}
	return nil
}

// Toggle inverts the current mode and persists it
func (p *DisplayPreference) Toggle() (bool, error) {
	next := !p.Dark()
	return next, p.Set(next)
}

// Sync applies a value written elsewhere without persisting it again. It
// reports whether the mode changed.
func (p *DisplayPreference) Sync(dark bool) bool {
	p.mu.Lock()
	if p.dark == dark {
		p.mu.Unlock()
		return false
	}
	p.dark = dark
	p.mu.Unlock()

	p.notify(dark)
	return true
}

// Dark reports whether dark mode is applied
func (p *DisplayPreference) Dark() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dark
}

// Glyph returns the toggle glyph for the current mode
func (p *DisplayPreference) Glyph() string {
	if p.Dark() {
		return GlyphDark
	}
	return GlyphLight
}

// ModeName returns "dark" or "light"
func (p *DisplayPreference) ModeName() string {
	if p.Dark() {
		return "dark"
	}
	return "light"
}

func (p *DisplayPreference) notify(dark bool) {
	if p.apply != nil {
		p.apply(dark)
	}
}
