// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"tempora/pkg/format"

	"github.com/spf13/cobra"
)

var (
	formatZone    string
	formatLocale  string
	formatPattern string
)

// formatCmd formats an explicit instant.
var formatCmd = &cobra.Command{
	Use:   "format <instant>",
	Short: "Format an instant against a token pattern",
	Long: `Format an instant against a token pattern.

The instant may be an ISO-8601 timestamp, an epoch-millisecond number, or
the literal "now". Unparsable input renders as "Invalid Date".

Run 'tempora docs tokens' for the full token reference.

Examples:
  tempora format 2024-03-21T12:00:00Z
  tempora format 1711022400000 --zone America/New_York --pattern "HH:mm:ss Z"
  tempora format now --pattern "dddd" --locale de-DE`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i := parseInstantArg(args[0])
		out := format.Render(i, patternOrDefault(formatPattern), renderOptions(cmd, formatZone, formatLocale))
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	formatCmd.Flags().StringVar(&formatZone, "zone", "", "timezone id (default from config, then UTC)")
	formatCmd.Flags().StringVar(&formatLocale, "locale", "", "BCP-47 locale for names (default en-US)")
	formatCmd.Flags().StringVar(&formatPattern, "pattern", "", `format pattern (default "YYYY-MM-DD HH:mm:ss")`)
	formatCmd.Flags().Bool("hour12", false, "force 12-hour clock rendering")
}
