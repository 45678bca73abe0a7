package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/diogo/mindmate/internal/api"
	"github.com/diogo/mindmate/internal/config"
	"github.com/diogo/mindmate/internal/preference"
	"github.com/diogo/mindmate/internal/tui"
)

// fakeTUI records the model instead of taking over the terminal
type fakeTUI struct {
	calls   int
	model   tui.Model
	storage *preference.FileStorage
	err     error
}

func (f *fakeTUI) RunChat(ctx context.Context, m tui.Model, storage *preference.FileStorage, logger *slog.Logger) error {
	f.calls++
	f.model = m
	f.storage = storage
	return f.err
}

// fakeClipboard records copied text
type fakeClipboard struct {
	copied []string
	err    error
}

func (c *fakeClipboard) write(text string) error {
	c.copied = append(c.copied, text)
	return c.err
}

// isolate points config and storage at a fresh directory and clears
// environment overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)
	t.Setenv(config.EnvEndpoint, "")
	t.Setenv(config.EnvTimeout, "")
	t.Setenv(config.EnvVerbose, "")
	return dir
}

func testDeps(client api.ChatClient) (*Dependencies, *preference.MemoryStorage, *fakeTUI) {
	storage := preference.NewMemoryStorage()
	fake := &fakeTUI{}
	return &Dependencies{
		Client:    client,
		Storage:   storage,
		TUI:       fake,
		Clipboard: func(string) error { return nil },
	}, storage, fake
}

// result holds the output of one run with escape sequences stripped
type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, deps *Dependencies, stdin io.Reader, args ...string) result {
	t.Helper()
	if stdin == nil {
		stdin = strings.NewReader("")
	}

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return result{stdout: ansi.Strip(stdout.String()), stderr: ansi.Strip(stderr.String()), err: err}
}
