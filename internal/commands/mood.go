package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/mindmate/internal/chat"
	"github.com/diogo/mindmate/internal/models"
)

// NewMoodCmd creates the mood command
func NewMoodCmd(deps *Dependencies, opts *globalOptions) *cobra.Command {
	send := &sendOptions{}
	cmd := &cobra.Command{
		Use:   "mood [label]",
		Short: "Tell MindMate how you are feeling",
		Long: `Send a mood to MindMate. Without a label the available moods are listed.

Labels: ` + moodLabels(),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, m := range models.Moods() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", m.Emoji, m.Label)
				}
				return nil
			}

			mood, ok := models.MoodByLabel(args[0])
			if !ok {
				return fmt.Errorf("%w: %q (choose one of %s)", chat.ErrUnknownMood, args[0], moodLabels())
			}
			return runSend(cmd, deps, opts, send, mood.Label, chat.MoodMode)
		},
	}
	cmd.Flags().StringVarP(&send.output, "output", "o", "", "Save the reply to a file")
	cmd.Flags().BoolVar(&send.raw, "raw", false, "Print plain text without styling")
	return cmd
}

func moodLabels() string {
	labels := make([]string, 0, len(models.Moods()))
	for _, m := range models.Moods() {
		labels = append(labels, m.Label)
	}
	return strings.Join(labels, ", ")
}
