package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/mindmate/internal/models"
)

// moodPicker is the overlay listing the mood shortcuts
type moodPicker struct {
	open   bool
	cursor int
	moods  []models.Mood
}

func (m *Model) openPicker() {
	m.picker = moodPicker{open: true, moods: m.panel.Moods()}
}

// updatePicker handles keys while the mood picker is open
func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	moods := m.picker.moods

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "ctrl+e":
		m.picker = moodPicker{}

	case "up", "k", "shift+tab":
		if len(moods) > 0 {
			m.picker.cursor--
			if m.picker.cursor < 0 {
				m.picker.cursor = len(moods) - 1
			}
		}

	case "down", "j", "tab":
		if len(moods) > 0 {
			m.picker.cursor++
			if m.picker.cursor >= len(moods) {
				m.picker.cursor = 0
			}
		}

	case "enter":
		if m.picker.cursor < len(moods) {
			return m.chooseMood(moods[m.picker.cursor].Label)
		}

	default:
		// Number keys pick directly
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(moods) {
			return m.chooseMood(moods[n-1].Label)
		}
	}

	return m, nil
}

func (m Model) chooseMood(label string) (tea.Model, tea.Cmd) {
	m.picker = moodPicker{}
	m.notice = ""
	m.err = nil
	cmd := m.sendMood(label)
	return m, cmd
}

// renderPicker renders the mood selection box
func (m Model) renderPicker() string {
	var content strings.Builder

	content.WriteString(pickerTitleStyle.Render("How are you feeling?"))
	content.WriteString("\n")

	for i, mood := range m.picker.moods {
		cursor := "  "
		name := pickerItemStyle.Render(mood.Label)
		if i == m.picker.cursor {
			cursor = pickerCursorStyle.Render("▸ ")
			name = pickerSelectedStyle.Render(mood.Label)
		}
		content.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, hintStyle.Render(strconv.Itoa(i+1)), mood.Emoji, name))
	}

	content.WriteString("\n")
	shortcuts := []string{
		statusKeyStyle.Render("↑↓") + statusDescStyle.Render(" Navigate"),
		statusKeyStyle.Render("Enter") + statusDescStyle.Render(" Send"),
		statusKeyStyle.Render("Esc") + statusDescStyle.Render(" Cancel"),
	}
	content.WriteString(strings.Join(shortcuts, "  │  "))

	return pickerBoxStyle.Render(content.String())
}
