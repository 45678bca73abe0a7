package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/mindmate/internal/preference"
)

// NewThemeCmd creates the theme command
func NewThemeCmd(deps *Dependencies, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the display mode",
		Long:      `Show the stored display mode, or set it. A running chat screen picks up the change.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(deps)
			if err != nil {
				return err
			}
			defer a.Close()

			pref := preference.New(a.storage, nil)
			if _, err := pref.Load(); err != nil {
				a.logger.Warn("display preference unreadable, using light mode", "error", err)
			}

			if len(args) > 0 {
				switch strings.ToLower(args[0]) {
				case "dark":
					err = pref.Set(true)
				case "light":
					err = pref.Set(false)
				case "toggle":
					_, err = pref.Toggle()
				default:
					return fmt.Errorf("unknown display mode %q (use dark, light or toggle)", args[0])
				}
				if err != nil {
					return err
				}
				a.logger.Debug("display mode changed", "dark", pref.Dark())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s mode %s\n", pref.ModeName(), pref.Glyph())
			return nil
		},
	}
}
