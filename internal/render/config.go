package render

import (
	"github.com/diogo/mindmate/internal/config"
)

// OptionsFromConfig builds render options from the markdown section of the
// user configuration, styled for the given display mode.
func OptionsFromConfig(cfg config.Config, dark bool) Options {
	md := cfg.Markdown
	opts := DefaultOptions().WithDark(dark)
	opts.EnableEmoji = md.EnableEmoji
	opts.PreserveNewLines = md.PreserveNewLines
	opts.TableWrap = md.TableWrap
	opts.InlineTableLinks = md.InlineTableLinks
	return opts
}

// OptionsFromConfigWithWidth is OptionsFromConfig with a specific width.
func OptionsFromConfigWithWidth(cfg config.Config, dark bool, width int) Options {
	return OptionsFromConfig(cfg, dark).WithWidth(width)
}
