package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/diogo/mindmate/internal/chat"
	"github.com/diogo/mindmate/internal/config"
	apierrors "github.com/diogo/mindmate/internal/errors"
	"github.com/diogo/mindmate/internal/models"
	"github.com/diogo/mindmate/internal/preference"
	"github.com/diogo/mindmate/internal/render"
	"github.com/diogo/mindmate/internal/transcript"
	"github.com/diogo/mindmate/internal/tui"
)

// sendOptions are the output flags of a one-shot send
type sendOptions struct {
	output string
	file   string
	raw    bool
}

// readMessage returns the message from -f, the positional argument or piped
// stdin, in that order. ok is false when no source was given or stdin was
// blank.
func readMessage(cmd *cobra.Command, args []string, file string) (string, bool, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", false, fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), true, nil
	}

	if len(args) > 0 {
		return args[0], true, nil
	}

	in := cmd.InOrStdin()
	if f, isFile := in.(*os.File); isFile {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", false, nil
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", false, fmt.Errorf("failed to read stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", false, nil
	}
	return string(data), true, nil
}

// runSend performs one exchange and prints the entries it produced
func runSend(cmd *cobra.Command, deps *Dependencies, opts *globalOptions, send *sendOptions, message string, mode chat.Mode) error {
	if strings.TrimSpace(message) == "" {
		return apierrors.ErrEmptyMessage
	}

	a, err := opts.open(deps)
	if err != nil {
		return err
	}
	defer a.Close()

	client, err := a.chatClient()
	if err != nil {
		return err
	}

	pref := preference.New(a.storage, nil)
	dark, err := pref.Load()
	if err != nil {
		a.logger.Warn("display preference unreadable, using light mode", "error", err)
	}

	errOut := cmd.ErrOrStderr()
	var spin *spinner
	if !send.raw {
		spin = newSpinner(errOut, "MindMate is listening")
		spin.start()
	}

	d := chat.NewDispatcher(transcript.New(), client, chat.WithLogger(a.logger))
	startTime := time.Now()
	outcome, ok := d.Send(cmd.Context(), message, mode)
	if !ok {
		spin.stopWithError()
		return apierrors.ErrEmptyMessage
	}
	a.logger.Debug("exchange finished",
		"mode", mode.Name,
		"outcome", outcome.Kind.String(),
		"duration", time.Since(startTime).Round(time.Millisecond),
	)

	if outcome.Kind == chat.OutcomeTransportFailure {
		spin.stopWithError()
	} else {
		spin.stopWithSuccess("Reply received")
	}

	texts := outcome.Texts(mode)
	if err := deliver(cmd, a, send, outcome, texts, dark); err != nil {
		return err
	}

	if outcome.Kind == chat.OutcomeTransportFailure {
		err := fmt.Errorf("request failed: %w", outcome.Err)
		if send.raw {
			return err
		}
		fmt.Fprintln(errOut, formatErrorMessage(outcome.Err, "Request failed"))
		return &reportedError{err: err}
	}
	return nil
}

// reportedError is an error whose details were already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func isReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// deliver writes the outcome texts to the output file, the clipboard and stdout
func deliver(cmd *cobra.Command, a *app, send *sendOptions, outcome chat.Outcome, texts []string, dark bool) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	plain := strings.Join(texts, "\n") + "\n"

	if a.cfg.CopyToClipboard && outcome.Kind == chat.OutcomeReply && a.deps.Clipboard != nil {
		if err := a.deps.Clipboard(outcome.Result.Reply); err != nil {
			a.logger.Warn("clipboard copy failed", "error", err)
			if !send.raw {
				fmt.Fprintln(errOut, lipgloss.NewStyle().Foreground(render.ThemeFor(dark).Error).
					Render(fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err)))
			}
		} else if !send.raw {
			fmt.Fprintln(errOut, lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard"))
		}
	}

	if send.output != "" {
		if err := os.WriteFile(send.output, []byte(plain), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !send.raw {
			fmt.Fprintln(errOut, lipgloss.NewStyle().Foreground(colorSuccess).
				Render(fmt.Sprintf("✓ Reply saved to %s", send.output)))
		}
		return nil
	}

	if send.raw {
		_, err := io.WriteString(out, plain)
		return err
	}

	printAssistant(out, a.cfg, texts, dark)
	return nil
}

// printAssistant prints texts as assistant bubbles like the chat screen does
func printAssistant(w io.Writer, cfg config.Config, texts []string, dark bool) {
	theme := render.ThemeFor(dark)

	bubbleWidth := getTerminalWidth() - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	bubbleStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1).
		Width(bubbleWidth)
	crisisStyle := bubbleStyle.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(theme.Warning).
		Foreground(theme.Warning).
		Bold(true)

	opts := render.OptionsFromConfigWithWidth(cfg, dark, bubbleWidth-4)
	fmt.Fprintln(w, labelStyle.Render("✦ "+models.SenderAssistant.Label()))
	for _, text := range texts {
		if text == models.CrisisNotice {
			fmt.Fprintln(w, crisisStyle.Render("⚠ "+text))
			continue
		}
		fmt.Fprintln(w, bubbleStyle.Render(render.Reply(text, opts)))
	}
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}
	return tui.FormatError(fmt.Errorf("%s: %w", context, err))
}
