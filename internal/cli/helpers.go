// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"tempora/pkg/format"
	"tempora/pkg/instant"

	"github.com/spf13/cobra"
)

// parseInstantArg interprets a positional instant argument. The literal
// "now" (and the empty string) map to the current instant; anything else
// goes through the heterogeneous constructor. An unparsable argument is
// still returned as the invalid instant so downstream output shows the
// documented "Invalid Date" rendering, with a debug note for --verbose runs.
func parseInstantArg(arg string) instant.Instant {
	if arg == "" || arg == "now" {
		return instant.Now()
	}
	i, err := instant.ParseStrict(arg)
	if err != nil {
		logger.Debug("instant parse failed", "input", arg, "err", err)
	}
	return i
}

// renderOptions assembles format options from flags, falling back to the
// loaded config for unset values.
func renderOptions(cmd *cobra.Command, zone, locale string) format.Options {
	opts := format.Options{Zone: zone, Locale: locale}
	if opts.Zone == "" {
		opts.Zone = cfg.Zone
	}
	if opts.Locale == "" {
		opts.Locale = cfg.Locale
	}
	if cmd.Flags().Changed("hour12") {
		v, _ := cmd.Flags().GetBool("hour12")
		opts.Hour12 = &v
	} else if cfg.Hour12 != nil {
		opts.Hour12 = cfg.Hour12
	}
	return opts
}

// patternOrDefault resolves the pattern flag against the config default.
func patternOrDefault(pattern string) string {
	if pattern != "" {
		return pattern
	}
	if cfg.Pattern != "" {
		return cfg.Pattern
	}
	return format.DefaultPattern
}

// offsetLabel renders minutes east of UTC as a +HH:MM label.
func offsetLabel(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}
