package render

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// TUITheme defines the color scheme for the chat screen
type TUITheme struct {
	Name        string
	Description string
	// Dark is true for palettes meant for dark display mode
	Dark bool

	// Base colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Text colors
	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// Built-in TUI themes
var (
	// DarkTheme is the default palette for dark display mode
	DarkTheme = TUITheme{
		Name:        "dark",
		Description: "Calm dark theme with teal accents",
		Dark:        true,

		Background: lipgloss.Color("#0f172a"),
		Surface:    lipgloss.Color("#1e293b"),
		Border:     lipgloss.Color("#334155"),

		Primary:   lipgloss.Color("#5eead4"),
		Secondary: lipgloss.Color("#a5b4fc"),
		Accent:    lipgloss.Color("#f0abfc"),
		Warning:   lipgloss.Color("#fcd34d"),
		Error:     lipgloss.Color("#fb7185"),

		Text:     lipgloss.Color("#e2e8f0"),
		TextDim:  lipgloss.Color("#94a3b8"),
		TextMute: lipgloss.Color("#475569"),
	}

	// LightTheme is the palette for light display mode
	LightTheme = TUITheme{
		Name:        "light",
		Description: "Soft light theme for bright terminals",

		Background: lipgloss.Color("#f8fafc"),
		Surface:    lipgloss.Color("#e2e8f0"),
		Border:     lipgloss.Color("#cbd5e1"),

		Primary:   lipgloss.Color("#0f766e"),
		Secondary: lipgloss.Color("#4338ca"),
		Accent:    lipgloss.Color("#a21caf"),
		Warning:   lipgloss.Color("#b45309"),
		Error:     lipgloss.Color("#be123c"),

		Text:     lipgloss.Color("#0f172a"),
		TextDim:  lipgloss.Color("#475569"),
		TextMute: lipgloss.Color("#94a3b8"),
	}

	// TokyoNightTheme is an alternative dark palette
	TokyoNightTheme = TUITheme{
		Name:        "tokyonight",
		Description: "Tokyo Night - Dark theme with blue accents",
		Dark:        true,

		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#24283b"),
		Border:     lipgloss.Color("#414868"),

		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#9ece6a"),
		Accent:    lipgloss.Color("#bb9af7"),
		Warning:   lipgloss.Color("#e0af68"),
		Error:     lipgloss.Color("#f7768e"),

		Text:     lipgloss.Color("#c0caf5"),
		TextDim:  lipgloss.Color("#565f89"),
		TextMute: lipgloss.Color("#3b4261"),
	}

	// NordTheme is an alternative dark palette
	NordTheme = TUITheme{
		Name:        "nord",
		Description: "Nord - Arctic-inspired theme with cool tones",
		Dark:        true,

		Background: lipgloss.Color("#2e3440"),
		Surface:    lipgloss.Color("#3b4252"),
		Border:     lipgloss.Color("#4c566a"),

		Primary:   lipgloss.Color("#88c0d0"), // Frost
		Secondary: lipgloss.Color("#a3be8c"), // Aurora green
		Accent:    lipgloss.Color("#b48ead"), // Aurora purple
		Warning:   lipgloss.Color("#ebcb8b"), // Aurora yellow
		Error:     lipgloss.Color("#bf616a"), // Aurora red

		Text:     lipgloss.Color("#eceff4"),
		TextDim:  lipgloss.Color("#7b88a1"),
		TextMute: lipgloss.Color("#4c566a"),
	}
)

var (
	themeMu         sync.RWMutex
	currentTUITheme = LightTheme
	darkPalette     = DarkTheme
)

// GetTUITheme returns the currently active TUI theme
func GetTUITheme() TUITheme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTUITheme
}

// SetTUITheme sets the active TUI theme by name
func SetTUITheme(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if !ok {
		return false
	}
	themeMu.Lock()
	currentTUITheme = theme
	themeMu.Unlock()
	return true
}

// SetDarkPalette chooses which dark palette dark mode uses.
// Light palettes are rejected.
func SetDarkPalette(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if !ok || !theme.Dark {
		return false
	}
	themeMu.Lock()
	darkPalette = theme
	if currentTUITheme.Dark {
		currentTUITheme = theme
	}
	themeMu.Unlock()
	return true
}

// ThemeFor returns the palette used for the given display mode
func ThemeFor(dark bool) TUITheme {
	if !dark {
		return LightTheme
	}
	themeMu.RLock()
	defer themeMu.RUnlock()
	return darkPalette
}

// ApplyDisplayMode activates the palette for the given display mode and returns it
func ApplyDisplayMode(dark bool) TUITheme {
	theme := ThemeFor(dark)
	themeMu.Lock()
	currentTUITheme = theme
	themeMu.Unlock()
	return theme
}

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, t := range AvailableTUIThemes() {
		if t.Name == name {
			return t, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes returns a list of all available TUI themes
func AvailableTUIThemes() []TUITheme {
	return []TUITheme{
		DarkTheme,
		LightTheme,
		TokyoNightTheme,
		NordTheme,
	}
}

// DarkPaletteNames returns the names accepted by SetDarkPalette
func DarkPaletteNames() []string {
	var names []string
	for _, t := range AvailableTUIThemes() {
		if t.Dark {
			names = append(names, t.Name)
		}
	}
	return names
}
