// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"fmt"
	"os"

	"tempora/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging.
	verbose bool
	// cfgFile allows specifying a custom config file.
	cfgFile string

	// cfg holds the loaded configuration; never nil after initRootConfig.
	cfg = config.DefaultConfig()

	// logger is the shared diagnostic logger. Debug output is suppressed
	// unless --verbose is given.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "tempora",
	})

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "tempora",
		Short: "A timezone-aware date/time toolbox",
		Long: TitleStyle.Render("tempora") + SubtitleStyle.Render(" - a timezone-aware date/time toolbox") + `

tempora formats instants against a token pattern language with locale and
timezone awareness, reports timezone metadata (offset, DST status, DST
transition boundaries), and performs simple calendar arithmetic.

` + SubtitleStyle.Render("Examples:") + `
  tempora now --zone Asia/Tokyo               Current time in Tokyo
  tempora format 2024-03-21T12:00:00Z \
      --pattern "dddd, MMMM DD" --locale fr-FR  Localized formatting
  tempora tz info America/New_York            Offset, DST flag, abbreviation
  tempora tz transitions Europe/Paris         This year's DST boundaries
  tempora zones --filter Europe               List matching zone ids`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the platform config dir)")

	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(tzCmd)
	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(localesCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(relCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(docsCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig reads the config file and environment overrides.
func initRootConfig() {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Bad config never blocks the CLI; defaults apply.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		return
	}
	cfg = loaded
	logger.Debug("config loaded", "zone", cfg.Zone, "locale", cfg.Locale, "pattern", cfg.Pattern)
}
