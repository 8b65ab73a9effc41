package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/hlop3z/timein/internal/cli"
	"github.com/hlop3z/timein/internal/picker"
	"github.com/hlop3z/timein/internal/tzdata"
	"github.com/hlop3z/timein/pkg/timein"
)

// tzCmd projects an instant across timezones.
func tzCmd() *cobra.Command {
	var (
		format       string
		hours        int
		date         string
		round        string
		printLocal   bool
		skipLocal    bool
		printInfo    bool
		hideInfo     bool
		printLocalTZ bool
		sortDiffs    bool
		live         bool
	)

	cmd := &cobra.Command{
		Use:   "tz [flags] [[LABEL:]ZONE...]",
		Short: "Show an instant across timezones",
		Long: `Show the reference instant (now, or --date) in each listed timezone.

Zones are IANA identifiers, optionally labeled ("Office: Europe/Paris");
bare US zone names resolve with a US/ prefix, so "Eastern" works. With no
zones given, configured default_zones apply, or an interactive picker opens
when run from a terminal. --hours N switches to a window of N additional
hourly columns.`,
		Example: `  timein tz US/Pacific "HQ: Asia/Tokyo"
  timein tz -h 8 -r nearest UTC
  timein tz -d "friday 3pm" --sort-diffs UTC Europe/Paris`,
		Args: cobra.ArbitraryArgs,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return tzdata.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// Flags beat env and config; merged values feed the projector.
			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				format = cfg.Format
			}
			if !cmd.Flags().Changed("round") && cfg.Round != "" {
				round = cfg.Round
			}
			if !cmd.Flags().Changed("hours") && cfg.Hours != 0 {
				hours = cfg.Hours
			}
			if !cmd.Flags().Changed("print-local") && !cmd.Flags().Changed("skip-local") && cfg.PrintLocal != nil {
				printLocal = *cfg.PrintLocal
			}
			if !cmd.Flags().Changed("print-info") && !cmd.Flags().Changed("hide-info") && cfg.PrintInfo != nil {
				printInfo = *cfg.PrintInfo
			}
			if !cmd.Flags().Changed("sort-diffs") && cfg.SortDiffs != nil {
				sortDiffs = *cfg.SortDiffs
			}
			if skipLocal {
				printLocal = false
			}
			if hideInfo {
				printInfo = false
			}

			opts := []timein.Option{
				timein.WithFormat(format),
				timein.WithHours(hours),
				timein.WithRounding(round),
			}
			if sortDiffs {
				opts = append(opts, timein.WithSortDiffs())
			}
			projector, err := timein.New(opts...)
			if err != nil {
				return err
			}

			at, err := timein.ParseDate(date, time.Now())
			if err != nil {
				return err
			}

			specs := args
			zonesFromConfig := false
			if len(specs) == 0 && len(cfg.DefaultZones) > 0 {
				specs = cfg.DefaultZones
				zonesFromConfig = true
			}
			if len(specs) == 0 {
				choice, err := picker.Pick()
				if err != nil {
					return err
				}
				specs = []string{choice}
			}

			targets, err := timein.ResolveSpecs(specs)
			if err != nil {
				return err
			}

			assemble := func(targets []timein.Zone) []timein.Zone {
				if !printLocal {
					return targets
				}
				label := LocalRowLabel
				if printLocalTZ {
					label = ""
				}
				return append([]timein.Zone{timein.LocalZone(label, time.Now())}, targets...)
			}
			zones := assemble(targets)

			render := func(w io.Writer, at time.Time) error {
				rows, err := projector.Project(at, zones)
				if err != nil {
					return err
				}

				table := cli.NewPlainTable()
				for _, row := range rows {
					cells := make([]string, 0, 2+len(row.Cells))
					cells = append(cells, row.Label)
					if printInfo {
						cells = append(cells, "("+row.OffsetLabel+")")
					}
					if row.Cells != nil {
						cells = append(cells, row.Cells...)
					} else {
						cells = append(cells, row.Timestamp)
					}
					table.AddRow(cells...)
				}
				_, err = fmt.Fprint(w, table.String())
				return err
			}

			if live {
				frame := func() error {
					return render(cmd.OutOrStdout(), time.Now())
				}
				reload := func() error {
					fresh, err := loadConfig()
					if err != nil {
						return err
					}
					if zonesFromConfig && len(fresh.DefaultZones) > 0 {
						targets, err := timein.ResolveSpecs(fresh.DefaultZones)
						if err != nil {
							return err
						}
						zones = assemble(targets)
					}
					return nil
				}
				return runLive(cmd, frame, reload)
			}

			return render(cmd.OutOrStdout(), at)
		},
	}

	// Registering help first keeps -h bound to --hours.
	cmd.Flags().Bool("help", false, "Show help for tz")
	cmd.Flags().StringVarP(&format, "format", "f", timein.DefaultFormat, "strftime pattern for single-timestamp mode")
	cmd.Flags().IntVarP(&hours, "hours", "h", 0, "Additional hourly columns (0 = single timestamp)")
	cmd.Flags().StringVarP(&date, "date", "d", "now", "Reference instant, absolute or relative (\"tomorrow 9am\")")
	cmd.Flags().StringVarP(&round, "round", "r", timein.RoundDown, "Window start rounding: up, down or nearest")
	cmd.Flags().BoolVar(&printLocal, "print-local", true, "Include a local-timezone row")
	cmd.Flags().BoolVar(&skipLocal, "skip-local", false, "Omit the local-timezone row")
	cmd.Flags().BoolVarP(&printLocalTZ, "print-local-timezone", "P", false, "Label the local row with its zone name instead of \"Here\"")
	cmd.Flags().BoolVar(&printInfo, "print-info", true, "Annotate rows with their hour offset")
	cmd.Flags().BoolVar(&hideInfo, "hide-info", false, "Omit offset annotations")
	cmd.Flags().BoolVarP(&sortDiffs, "sort-diffs", "S", false, "Sort rows by ascending offset from the first row")
	cmd.Flags().BoolVarP(&live, "live", "l", false, "Re-render on every minute change until interrupted")

	cmd.MarkFlagsMutuallyExclusive("live", "date")

	return cmd
}
