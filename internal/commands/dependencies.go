package commands

import (
	"context"
	"log/slog"

	"github.com/atotto/clipboard"

	"github.com/diogo/mindmate/internal/api"
	"github.com/diogo/mindmate/internal/preference"
	"github.com/diogo/mindmate/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(ctx context.Context, m tui.Model, storage *preference.FileStorage, logger *slog.Logger) error
}

// Dependencies holds the external dependencies for the commands.
// Nil fields are built from the user configuration when a command runs.
type Dependencies struct {
	// Client talks to the reply service.
	Client api.ChatClient

	// Storage holds the display preference.
	Storage preference.Storage

	// TUI is the terminal user interface.
	TUI TUIInterface

	// Clipboard copies text to the system clipboard.
	Clipboard func(text string) error
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(ctx context.Context, m tui.Model, storage *preference.FileStorage, logger *slog.Logger) error {
	return tui.RunChat(ctx, m, storage, logger)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI:       &DefaultTUI{},
		Clipboard: clipboard.WriteAll,
	}
}
