package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/mindmate/internal/chat"
	"github.com/diogo/mindmate/internal/models"
	"github.com/diogo/mindmate/internal/preference"
	"github.com/diogo/mindmate/internal/transcript"
)

// NewQuickCmds creates one command per quick action. They never touch the
// network.
func NewQuickCmds(deps *Dependencies, opts *globalOptions) []*cobra.Command {
	actions := models.QuickActions()
	cmds := make([]*cobra.Command, 0, len(actions))
	for _, action := range actions {
		cmds = append(cmds, newQuickCmd(deps, opts, action))
	}
	return cmds
}

func newQuickCmd(deps *Dependencies, opts *globalOptions, action models.QuickAction) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   action.ID,
		Short: fmt.Sprintf("%s: a canned self-help prompt", action.Title),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr := transcript.New()
			panel := chat.NewPanel(chat.NewDispatcher(tr, nil))
			id, err := panel.Trigger(action.ID)
			if err != nil {
				return err
			}
			entry, _ := tr.Find(id)

			if raw {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), entry.Text)
				return err
			}

			a, err := opts.open(deps)
			if err != nil {
				return err
			}
			defer a.Close()

			dark, err := preference.New(a.storage, nil).Load()
			if err != nil {
				a.logger.Warn("display preference unreadable, using light mode", "error", err)
			}
			printAssistant(cmd.OutOrStdout(), a.cfg, []string{entry.Text}, dark)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print plain text without styling")
	return cmd
}
