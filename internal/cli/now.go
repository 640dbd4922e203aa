// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"tempora/pkg/format"
	"tempora/pkg/instant"

	"github.com/spf13/cobra"
)

var (
	nowZone    string
	nowLocale  string
	nowPattern string
)

// nowCmd formats the current instant.
var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current time",
	Long: `Print the current time rendered through the token formatter.

Examples:
  tempora now
  tempora now --zone Asia/Tokyo
  tempora now --pattern "dddd, MMMM DD YYYY hh:mm A" --zone America/New_York`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := format.Render(instant.Now(), patternOrDefault(nowPattern), renderOptions(cmd, nowZone, nowLocale))
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	nowCmd.Flags().StringVar(&nowZone, "zone", "", "timezone id (default from config, then UTC)")
	nowCmd.Flags().StringVar(&nowLocale, "locale", "", "BCP-47 locale for names (default en-US)")
	nowCmd.Flags().StringVar(&nowPattern, "pattern", "", `format pattern (default "YYYY-MM-DD HH:mm:ss")`)
	nowCmd.Flags().Bool("hour12", false, "force 12-hour clock rendering")
}
