// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strings"

	"tempora/internal/hostcal"
	"tempora/pkg/timezone"

	"github.com/spf13/cobra"
)

var zonesFilter string

// zonesCmd lists supported timezone identifiers.
var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List supported timezone identifiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		names := timezone.SupportedZones()
		out := cmd.OutOrStdout()
		matched := 0
		for _, name := range names {
			if zonesFilter != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(zonesFilter)) {
				continue
			}
			fmt.Fprintln(out, name)
			matched++
		}
		if zonesFilter != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render(fmt.Sprintf("%d of %d zones matched %q", matched, len(names), zonesFilter)))
		}
		return nil
	},
}

// localesCmd lists supported locale identifiers.
var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List supported locale identifiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, id := range hostcal.SupportedLocales() {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	zonesCmd.Flags().StringVar(&zonesFilter, "filter", "", "only list zones containing this substring")
}
