package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hlop3z/timein/internal/cli"
)

// CommandInfo pairs a command name with its one-line description.
type CommandInfo struct {
	Name        string
	Description string
}

// CommandCategory groups related commands on the root help screen.
type CommandCategory struct {
	Title    string
	Commands []CommandInfo
}

// customHelp displays a styled help message for the root command.
func customHelp(cmd *cobra.Command) {
	categories := []CommandCategory{
		{
			Title: "Projection",
			Commands: []CommandInfo{
				{"tz", "Show an instant across timezones (hour columns with -h)"},
			},
		},
		{
			Title: "Reference",
			Commands: []CommandInfo{
				{"zones", "List bundled timezone identifiers and countries"},
				{"completion", "Generate shell completion scripts"},
			},
		},
	}

	flags := []struct{ flag, desc string }{
		{"-c, --config", FlagDescConfig},
		{"    --no-color", FlagDescNoColor},
		{"-h, --help", "Show help information"},
		{"-v, --version", "Show version information"},
	}

	renderCategoryHelp(cmd, MainTitle, MainSummary, categories, flags)
}

// renderCategoryHelp renders a categorized command listing plus global flags.
func renderCategoryHelp(cmd *cobra.Command, title, summary string, categories []CommandCategory, flags []struct{ flag, desc string }) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, cli.Dim(summary))
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.Header("USAGE"))
	fmt.Fprintf(out, "  %s <command> [flags]\n", cmd.Name())

	for _, cat := range categories {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.Header(strings.ToUpper(cat.Title)))
		for _, c := range cat.Commands {
			fmt.Fprintf(out, "  %-12s %s\n", c.Name, c.Description)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.Header("FLAGS"))
	for _, f := range flags {
		fmt.Fprintf(out, "  %-18s %s\n", f.flag, f.desc)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Use %s for command details.\n", cli.Code("timein <command> --help"))
}
