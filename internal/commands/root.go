// Package commands provides the mindmate CLI.
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diogo/mindmate/internal/chat"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// NewRootCmd builds the command tree around deps
func NewRootCmd(deps *Dependencies) *cobra.Command {
	opts := &globalOptions{}
	send := &sendOptions{}

	cmd := &cobra.Command{
		Use:   "mindmate [message]",
		Short: "Terminal client for the MindMate support assistant",
		Long: `mindmate talks to a MindMate reply service from the terminal.
It is not a replacement for professional help. If you are in immediate
danger, call local emergency services now.

Examples:
  mindmate chat                         Start the chat screen
  mindmate "I can't sleep"              Send a single message
  mindmate -f note.txt                  Read the message from a file
  echo "rough day" | mindmate           Read the message from stdin
  mindmate breathe                      Show a breathing exercise
  mindmate mood anxious                 Tell MindMate how you feel
  mindmate theme toggle                 Switch between dark and light`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "mindmate %s (built %s)\n", Version, BuildTime)
				return nil
			}

			message, ok, err := readMessage(cmd, args, send.file)
			if err != nil {
				return err
			}
			if !ok {
				return cmd.Help()
			}
			return runSend(cmd, deps, opts, send, message, chat.TypedMode)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "Reply service base URL (default from config)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "Request timeout, e.g. 30s (default from config)")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Write debug logs to the log file")
	cmd.Flags().StringVarP(&send.output, "output", "o", "", "Save the reply to a file")
	cmd.Flags().StringVarP(&send.file, "file", "f", "", "Read the message from a file")
	cmd.Flags().BoolVar(&send.raw, "raw", false, "Print plain text without styling")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(
		NewChatCmd(deps, opts),
		NewMoodCmd(deps, opts),
		NewThemeCmd(deps, opts),
		NewConfigCmd(),
	)
	for _, c := range NewQuickCmds(deps, opts) {
		cmd.AddCommand(c)
	}
	return cmd
}

// rootCmd represents the base command
var rootCmd = NewRootCmd(NewDependencies())

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if msg := err.Error(); msg != "" && !isReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", msg)
		}
		stop()
		os.Exit(1)
	}
}
