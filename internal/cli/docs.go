// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// tokenReference is the rendered token documentation. The table mirrors the
// formatter's token set; keep the two in sync when adding tokens.
const tokenReference = `# Format tokens

Tokens are matched longest-first; any other character is copied through.

| Token | Meaning | Example |
|-------|---------|---------|
| YYYY  | 4-digit year | 2024 |
| YY    | 2-digit year | 24 |
| MMMM  | full month name | March |
| MMM   | short month name | Mar |
| MM    | 2-digit month | 03 |
| DD    | 2-digit day of month | 21 |
| dddd  | full weekday name | Thursday |
| ddd   | short weekday name | Thu |
| HH    | 24-hour hour | 12 |
| hh    | 12-hour hour | 12 |
| mm    | 2-digit minute | 00 |
| ss    | 2-digit second | 00 |
| A     | AM/PM upper | PM |
| a     | am/pm lower | pm |
| Z     | short timezone name | EDT |

A pattern containing ` + "`a`" + `, ` + "`A`" + ` or ` + "`hh`" + ` switches
numeric hours to the 12-hour clock unless --hour12 says otherwise.
`

// docsCmd groups rendered reference documentation.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Reference documentation",
}

// docsTokensCmd renders the token reference.
var docsTokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Show the format token reference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			// Styled rendering is cosmetic; fall back to the raw markdown.
			fmt.Fprint(cmd.OutOrStdout(), tokenReference)
			return nil
		}
		out, err := renderer.Render(tokenReference)
		if err != nil {
			fmt.Fprint(cmd.OutOrStdout(), tokenReference)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	docsCmd.AddCommand(docsTokensCmd)
}
