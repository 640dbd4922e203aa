// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"tempora/pkg/instant"
	"tempora/pkg/timezone"

	"github.com/spf13/cobra"
)

var (
	tzInfoAt string
	tzYear   int
)

// tzCmd groups the timezone metadata queries.
var tzCmd = &cobra.Command{
	Use:   "tz",
	Short: "Timezone metadata queries",
}

// tzInfoCmd reports offset, DST flag and abbreviation for a zone.
var tzInfoCmd = &cobra.Command{
	Use:   "info <zone>",
	Short: "Show a zone's offset, DST status and abbreviation",
	Long: `Show a zone's offset from UTC, whether daylight-saving time is in
effect, and its short name, all evaluated at one instant (--at, default now).

Unknown zones report UTC defaults rather than failing.

Examples:
  tempora tz info America/New_York
  tempora tz info Asia/Kathmandu --at 2024-06-01T00:00:00Z`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		zone := args[0]
		at := parseInstantArg(tzInfoAt)
		if !timezone.IsSupported(zone) {
			fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+"unknown zone "+zone+", reporting UTC defaults")
		}

		info := timezone.InfoAt(at, zone)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, LabelStyle.Render("zone:         ")+ValueStyle.Render(info.Name))
		fmt.Fprintln(out, LabelStyle.Render("offset:       ")+fmt.Sprintf("%d min (%s)", info.OffsetMinutes, offsetLabel(info.OffsetMinutes)))
		fmt.Fprintln(out, LabelStyle.Render("dst:          ")+fmt.Sprintf("%t", info.IsDST))
		fmt.Fprintln(out, LabelStyle.Render("abbreviation: ")+info.Abbreviation)
		return nil
	},
}

// tzTransitionsCmd locates the DST boundaries within a year.
var tzTransitionsCmd = &cobra.Command{
	Use:   "transitions <zone>",
	Short: "Show the dates where a zone's DST status flips in a year",
	Long: `Scan a calendar year day by day and report the dates where the
zone's daylight-saving status flips. Zones without DST report no
transitions.

Examples:
  tempora tz transitions America/New_York --year 2024
  tempora tz transitions Australia/Sydney`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		zone := args[0]
		year := tzYear
		if year == 0 {
			year = instant.Now().Time().Year()
		}
		logger.Debug("scanning transitions", "zone", zone, "year", year)

		window := timezone.Transitions(zone, year)
		out := cmd.OutOrStdout()
		if window.Start == nil && window.End == nil {
			fmt.Fprintf(out, "%s: no DST transitions in %d\n", ValueStyle.Render(zone), year)
			return nil
		}
		fmt.Fprintln(out, TitleStyle.Render(fmt.Sprintf("%s %d", zone, year)))
		if window.Start != nil {
			fmt.Fprintln(out, LabelStyle.Render("start: ")+window.Start.String())
		}
		if window.End != nil {
			fmt.Fprintln(out, LabelStyle.Render("end:   ")+window.End.String())
		}
		return nil
	},
}

func init() {
	tzInfoCmd.Flags().StringVar(&tzInfoAt, "at", "", `instant to evaluate at (default "now")`)
	tzTransitionsCmd.Flags().IntVar(&tzYear, "year", 0, "calendar year to scan (default current year)")

	tzCmd.AddCommand(tzInfoCmd)
	tzCmd.AddCommand(tzTransitionsCmd)
}
