// Package main provides the timein CLI, a small tool that shows one moment
// in time across many timezones: as a single formatted timestamp per zone,
// or as a row of hourly columns over a time window.
//
// Usage:
//
//	timein tz                          # pick a timezone interactively
//	timein tz US/Pacific Asia/Tokyo    # timestamps for two zones
//	timein tz "Office: Europe/Paris"   # label a zone
//	timein tz -h 8 UTC                 # eight hourly columns
//	timein tz -d "tomorrow 9am" UTC    # project a future instant
//	timein zones europe                # list matching zone identifiers
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hlop3z/timein/internal/cli"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// Global flags
var (
	configFile string
	noColor    bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "timein",
		Short:   "Show one moment across many timezones",
		Long:    `Timein converts and displays the current (or a specified) moment in time across multiple named timezones, either as a single timestamp per zone or as a row of localized hour labels over a time window.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				cli.SetDefault(cli.NewConfigWithMode(cli.ModePlain))
			}
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Accept the config file spelling of flag names, so --sort_diffs
	// works the same as --sort-diffs.
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	// Keep cobra's generated help for subcommands; the root gets the
	// categorized screen.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd.HasParent() {
			defaultHelp(cmd, args)
			return
		}
		customHelp(cmd)
	})

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", FlagDescConfig)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, FlagDescNoColor)

	rootCmd.AddCommand(
		tzCmd(),
		zonesCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatClientError(err))
		os.Exit(1)
	}
}
