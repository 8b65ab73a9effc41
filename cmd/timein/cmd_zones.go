package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hlop3z/timein/internal/cli"
	"github.com/hlop3z/timein/internal/tzdata"
)

// zonesCmd lists the bundled timezone identifiers.
func zonesCmd() *cobra.Command {
	var countriesOut bool

	cmd := &cobra.Command{
		Use:     "zones [FILTER]",
		Aliases: []string{"list-tzs"},
		Short:   "List known timezone identifiers",
		Long: `List the bundled IANA timezone identifiers, one per line, sorted.
An optional FILTER keeps only case-insensitive substring matches. With
--countries the bundled country/capital table is printed instead, FILTER
matching country, capital, or zone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}
			out := cmd.OutOrStdout()

			if countriesOut {
				table := cli.NewTable("COUNTRY", "CAPITAL", "ZONE")
				for _, c := range tzdata.Countries() {
					if filter != "" &&
						!strings.Contains(strings.ToLower(c.Name), filter) &&
						!strings.Contains(strings.ToLower(c.Capital), filter) &&
						!strings.Contains(strings.ToLower(c.Zone), filter) {
						continue
					}
					table.AddRow(c.Name, c.Capital, c.Zone)
				}
				_, err := fmt.Fprint(out, table.String())
				return err
			}

			// Plain one-per-line output stays grep-friendly.
			for _, name := range tzdata.Names() {
				if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
					continue
				}
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&countriesOut, "countries", false, "List the bundled country/capital table instead")

	return cmd
}
