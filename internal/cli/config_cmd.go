// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"tempora/internal/config"

	"github.com/spf13/cobra"
)

// configCmd groups configuration management.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tempora configuration",
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		path, err := config.ConfigFilePath()
		if err == nil {
			fmt.Fprintln(out, SubtitleStyle.Render("config file: "+path))
		}
		fmt.Fprintln(out, LabelStyle.Render("zone:    ")+cfg.Zone)
		fmt.Fprintln(out, LabelStyle.Render("locale:  ")+cfg.Locale)
		fmt.Fprintln(out, LabelStyle.Render("pattern: ")+cfg.Pattern)
		hour12 := "inferred from pattern"
		if cfg.Hour12 != nil {
			hour12 = fmt.Sprintf("%t", *cfg.Hour12)
		}
		fmt.Fprintln(out, LabelStyle.Render("hour12:  ")+hour12)
		return nil
	},
}

// configInitCmd writes a default config file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.WriteDefault()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote "+path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
