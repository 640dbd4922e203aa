// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"math"

	"tempora/pkg/instant"

	"github.com/spf13/cobra"
)

var diffUnit string

// diffCmd reports the difference between two instants.
var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Difference between two instants in a unit",
	Long: `Print a - b expressed in the given unit, truncated toward zero.
Invalid instants produce NaN.

Examples:
  tempora diff 2024-03-21T12:00:00Z 2024-03-10T07:00:00Z --unit day
  tempora diff now 2024-01-01 --unit month`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		unit := instant.Unit(diffUnit)
		if ok, err := unit.IsValid(); !ok {
			return err
		}
		a := parseInstantArg(args[0])
		b := parseInstantArg(args[1])

		d := a.DiffIn(b, unit)
		out := cmd.OutOrStdout()
		if math.IsNaN(d) {
			fmt.Fprintln(out, "NaN")
			return nil
		}
		fmt.Fprintf(out, "%d %s\n", int64(d), diffUnit)
		return nil
	},
}

// relCmd renders an instant as a relative-time phrase.
var relCmd = &cobra.Command{
	Use:   "rel <instant>",
	Short: "Relative-time phrase for an instant",
	Long: `Render an instant relative to now, e.g. "3 hours ago" or
"in 2 days".

Examples:
  tempora rel 2024-01-01
  tempora rel 1711022400000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), parseInstantArg(args[0]).Relative())
		return nil
	},
}

func init() {
	diffCmd.Flags().StringVar(&diffUnit, "unit", "millisecond", "unit: year, month, week, day, hour, minute, second, millisecond")
}
