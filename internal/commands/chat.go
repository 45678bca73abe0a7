package commands

import (
	"github.com/spf13/cobra"

	"github.com/diogo/mindmate/internal/chat"
	"github.com/diogo/mindmate/internal/preference"
	"github.com/diogo/mindmate/internal/transcript"
	"github.com/diogo/mindmate/internal/tui"
)

// NewChatCmd creates the interactive chat command
func NewChatCmd(deps *Dependencies, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start the MindMate chat screen.

Type a message and press Enter to send it. Slash commands:
  /breathe /ground /small   canned self-help prompts
  /mood [label]             share a mood (no label opens the picker)
  /theme                    switch between dark and light
  /copy                     copy the last reply
Type 'exit', 'quit', or press Ctrl+C to end the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, deps, opts)
		},
	}
}

func runChat(cmd *cobra.Command, deps *Dependencies, opts *globalOptions) error {
	a, err := opts.open(deps)
	if err != nil {
		return err
	}
	defer a.Close()

	client, err := a.chatClient()
	if err != nil {
		return err
	}

	pref := preference.New(a.storage, tui.ApplyDisplayMode)
	if _, err := pref.Load(); err != nil {
		a.logger.Warn("display preference unreadable, using light mode", "error", err)
	}

	d := chat.NewDispatcher(transcript.New(), client, chat.WithLogger(a.logger))
	m := tui.NewChatModel(d, pref, a.cfg)

	// Only file-backed storage can be watched
	fileStorage, _ := a.storage.(*preference.FileStorage)

	a.logger.Info("chat session started", "endpoint", a.cfg.ChatURL(), "dark", pref.Dark())
	defer a.logger.Info("chat session ended")
	return deps.TUI.RunChat(cmd.Context(), m, fileStorage, a.logger)
}
