package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/mindmate/internal/chat"
	"github.com/diogo/mindmate/internal/config"
	"github.com/diogo/mindmate/internal/models"
	"github.com/diogo/mindmate/internal/preference"
	"github.com/diogo/mindmate/internal/render"
	"github.com/diogo/mindmate/internal/transcript"
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the TUI
type (
	// replyMsg carries a finished exchange back to the UI loop
	replyMsg struct {
		pending *chat.Pending
		outcome chat.Outcome
	}
	// PreferenceChangedMsg reports a display mode written by another process
	PreferenceChangedMsg struct {
		Dark bool
	}
	clipboardMsg struct {
		err error
	}
)

// clipboardWriter is replaced in tests
var clipboardWriter = clipboard.WriteAll

const helpText = "/breathe  /ground  /small  /mood [label]  /theme  /copy  /help  exit"

// Model represents the chat screen state
type Model struct {
	ctx        context.Context
	dispatcher *chat.Dispatcher
	panel      *chat.Panel
	pref       *preference.DisplayPreference
	cfg        config.Config

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	ready          bool
	ticking        bool
	animationFrame int
	notice         string
	err            error
	picker         moodPicker
	lastRevision   uint64

	// rendered caches assistant markdown for the current width and mode
	rendered  map[transcript.EntryID]string
	renderKey string

	// Dimensions
	width  int
	height int
}

// NewChatModel creates the chat screen. The greeting is appended when the
// transcript is empty.
func NewChatModel(d *chat.Dispatcher, pref *preference.DisplayPreference, cfg config.Config) Model {
	if d.Transcript().Len() == 0 {
		d.Transcript().Append(models.Greeting, models.SenderAssistant)
	}

	ta := textarea.New()
	ta.Placeholder = "Tell me what's on your mind..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.KeyMap.InsertNewline.SetKeys("alt+enter")
	ta.Focus()
	styleTextarea(&ta)

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = loadingStyle

	return Model{
		ctx:        context.Background(),
		dispatcher: d,
		panel:      chat.NewPanel(d),
		pref:       pref,
		cfg:        cfg,
		textarea:   ta,
		spinner:    s,
		rendered:   make(map[transcript.EntryID]string),
	}
}

func styleTextarea(ta *textarea.Model) {
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle
}

// transcriptKeys limits viewport scrolling to keys the textarea does not use
func transcriptKeys() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("ctrl+up")),
		Down:         key.NewBinding(key.WithKeys("ctrl+down")),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*120, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 2 // Status bar and notice line
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}
		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.viewport.KeyMap = transcriptKeys()
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(contentWidth - 4)
		m.updateViewport()
		m.viewport.GotoBottom()

	case replyMsg:
		m.dispatcher.Complete(msg.pending, msg.outcome)
		if msg.outcome.Kind == chat.OutcomeTransportFailure {
			m.err = msg.outcome.Err
		}
		m.updateViewport()
		return m, nil

	case PreferenceChangedMsg:
		if m.pref.Sync(msg.Dark) {
			m.notice = fmt.Sprintf("%s switched to %s mode", m.pref.Glyph(), m.pref.ModeName())
			m.themeChanged()
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("failed to copy to clipboard: %w", msg.err)
		} else {
			m.notice = "Copied last reply to clipboard"
		}
		return m, nil

	case spinner.TickMsg:
		if m.dispatcher.InFlight() > 0 {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.dispatcher.InFlight() > 0 {
			m.animationFrame++
			if m.dispatcher.Transcript().Placeholders() > 0 {
				m.updateViewport()
			}
			cmds = append(cmds, animationTick())
		} else {
			m.ticking = false
		}

	case tea.KeyMsg:
		if m.picker.open {
			return m.updatePicker(msg)
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+t":
			m.toggleTheme()
			return m, nil

		case "ctrl+e":
			m.openPicker()
			return m, nil

		case "ctrl+y":
			cmd = m.copyLastReply()
			return m, cmd

		case "enter":
			return m.submit()
		}

		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submit handles Enter: slash commands first, anything else is sent
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" {
		return m, nil
	}
	m.notice = ""
	m.err = nil

	if cmd, handled := m.runCommand(input); handled {
		m.textarea.Reset()
		return m, cmd
	}

	pending, ok := m.dispatcher.Begin(input, chat.TypedMode)
	if !ok {
		return m, nil
	}
	m.textarea.Reset()
	m.updateViewport()
	cmd := m.startExchange(pending)
	return m, cmd
}

// runCommand executes exit words and slash commands.
// It reports false for ordinary chat input.
func (m *Model) runCommand(input string) (tea.Cmd, bool) {
	fields := strings.Fields(input)
	name := strings.ToLower(fields[0])

	switch name {
	case "exit", "quit", "/exit", "/quit":
		if len(fields) == 1 {
			return tea.Quit, true
		}
	}
	if !strings.HasPrefix(name, "/") {
		return nil, false
	}

	switch name {
	case "/breathe", "/ground", "/small":
		if _, err := m.panel.Trigger(strings.TrimPrefix(name, "/")); err != nil {
			m.err = err
		}
		m.updateViewport()
		return nil, true

	case "/mood":
		if len(fields) == 1 {
			m.openPicker()
			return nil, true
		}
		return m.sendMood(fields[1]), true

	case "/theme":
		m.toggleTheme()
		return nil, true

	case "/copy":
		return m.copyLastReply(), true

	case "/help":
		m.notice = helpText
		return nil, true

	default:
		m.notice = fmt.Sprintf("Unknown command %s. Type /help for the list.", fields[0])
		return nil, true
	}
}

// sendMood begins a mood exchange
func (m *Model) sendMood(label string) tea.Cmd {
	pending, err := m.panel.Mood(label)
	if err != nil {
		m.err = err
		return nil
	}
	m.updateViewport()
	return m.startExchange(pending)
}

// startExchange runs the request off the UI loop and starts the loading
// animation if it is not already running
func (m *Model) startExchange(p *chat.Pending) tea.Cmd {
	d, ctx := m.dispatcher, m.ctx
	cmds := []tea.Cmd{func() tea.Msg {
		return replyMsg{pending: p, outcome: d.Exchange(ctx, p)}
	}}

	if !m.ticking {
		m.ticking = true
		m.animationFrame = 0
		cmds = append(cmds, m.spinner.Tick, animationTick())
	}
	return tea.Batch(cmds...)
}

func (m *Model) toggleTheme() {
	if _, err := m.pref.Toggle(); err != nil {
		m.err = fmt.Errorf("failed to save display preference: %w", err)
	}
	m.notice = fmt.Sprintf("%s %s mode", m.pref.Glyph(), m.pref.ModeName())
	m.themeChanged()
}

// themeChanged restyles components after the active palette changed
func (m *Model) themeChanged() {
	styleTextarea(&m.textarea)
	m.spinner.Style = loadingStyle
	m.updateViewport()
}

func (m *Model) copyLastReply() tea.Cmd {
	entry, ok := m.dispatcher.Transcript().LastFrom(models.SenderAssistant)
	if !ok {
		m.notice = "Nothing to copy yet"
		return nil
	}
	text := entry.Text
	return func() tea.Msg {
		return clipboardMsg{err: clipboardWriter(text)}
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("✦ MindMate"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.cfg.ChatURL()),
		hintStyle.Render("  •  "),
		glyphStyle.Render(m.pref.Glyph()),
	)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	// Transcript, or the mood picker on top of it
	if m.picker.open {
		picker := lipgloss.Place(contentWidth, m.viewport.Height+2,
			lipgloss.Center, lipgloss.Center, m.renderPicker())
		sections = append(sections, picker)
	} else {
		sections = append(sections, messagesAreaStyle.
			Width(contentWidth).
			Height(m.viewport.Height).
			Render(m.viewport.View()))
	}

	// Input stays available while replies are pending
	inputContent := lipgloss.JoinVertical(
		lipgloss.Left,
		inputLabelStyle.Render(models.SenderUser.Label()),
		m.textarea.View(),
	)
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.renderStatusBar(contentWidth))

	switch {
	case m.err != nil:
		sections = append(sections, FormatError(m.err))
	case m.notice != "":
		sections = append(sections, noticeStyle.Render(m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"^T", "Theme"},
		{"^E", "Mood"},
		{"^Y", "Copy"},
		{"PgUp/PgDn", "Scroll"},
		{"Esc", "Quit"},
	}

	var items []string
	if n := m.dispatcher.InFlight(); n > 0 {
		waiting := "waiting for a reply"
		if n > 1 {
			waiting = fmt.Sprintf("waiting for %d replies", n)
		}
		items = append(items, m.spinner.View()+loadingStyle.Render(" "+waiting))
	}
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	bar := strings.Join(items, statusDescStyle.Render("  │  "))
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content and follows the newest entry
// whenever the transcript changed
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	bubbleWidth := m.viewport.Width - 6
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}
	dark := m.pref.Dark()
	if rk := fmt.Sprintf("%d:%t", bubbleWidth, dark); rk != m.renderKey {
		m.rendered = make(map[transcript.EntryID]string)
		m.renderKey = rk
	}
	opts := render.OptionsFromConfigWithWidth(m.cfg, dark, bubbleWidth-4)

	var content strings.Builder
	for i, entry := range m.dispatcher.Transcript().Entries() {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(m.renderEntry(entry, bubbleWidth, opts))
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())

	if rev := m.dispatcher.Transcript().Revision(); rev != m.lastRevision {
		m.lastRevision = rev
		m.viewport.GotoBottom()
	}
}

func (m *Model) renderEntry(entry transcript.Entry, bubbleWidth int, opts render.Options) string {
	if entry.Sender == models.SenderUser {
		label := userLabelStyle.Render("● " + entry.Sender.Label())
		return label + "\n" + userBubbleStyle.Width(bubbleWidth).Render(entry.Text)
	}

	label := assistantLabelStyle.Render("✦ " + entry.Sender.Label())
	switch {
	case entry.Placeholder:
		return label + "\n" + placeholderStyle.Render(m.typingIndicator())
	case entry.Text == models.CrisisNotice:
		return label + "\n" + crisisBubbleStyle.Width(bubbleWidth).Render("⚠ "+entry.Text)
	}

	rendered, ok := m.rendered[entry.ID]
	if !ok {
		rendered = render.Reply(entry.Text, opts)
		m.rendered[entry.ID] = rendered
	}
	return label + "\n" + assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
}

// typingIndicator animates the placeholder of a pending reply
func (m Model) typingIndicator() string {
	frame := m.animationFrame
	active := (frame / 2) % 3

	var dots strings.Builder
	for i := 0; i < 3; i++ {
		dot := "○"
		if i == active {
			dot = "●"
		}
		color := gradientColors[(frame+i)%len(gradientColors)]
		dots.WriteString(lipgloss.NewStyle().Foreground(color).Render(dot))
		dots.WriteString(" ")
	}
	return dots.String() + hintStyle.Render("MindMate is typing")
}

// ApplyDisplayMode activates the palette for a display mode and rebuilds the
// styles. It is the apply hook for the display preference.
func ApplyDisplayMode(dark bool) {
	render.ApplyDisplayMode(dark)
	UpdateTheme()
}

// RunChat starts the chat TUI. When storage is set, display mode changes
// written by other processes are picked up while the screen is open.
func RunChat(ctx context.Context, m Model, storage *preference.FileStorage, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	m.ctx = ctx

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if storage != nil {
		w, err := preference.NewWatcher(storage, func(dark bool) {
			p.Send(PreferenceChangedMsg{Dark: dark})
		}, logger)
		if err != nil {
			logger.Warn("display preference sync disabled", "error", err)
		} else {
			defer w.Close()
			go w.Run(ctx)
		}
	}

	_, err := p.Run()
	return err
}
