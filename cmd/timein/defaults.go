package main

// CLI branding for the root help screen.
const (
	MainTitle   = "⏳ Timein"
	MainSummary = "★  One moment: every timezone"
)

// Default config file location under the user config directory.
const (
	// DefaultConfigDir is the directory created under $XDG_CONFIG_HOME.
	DefaultConfigDir = "timein"

	// DefaultConfigFile is the config filename inside DefaultConfigDir.
	DefaultConfigFile = "config.yml"
)

// Row labels.
const (
	// LocalRowLabel labels the synthetic row for the host's timezone.
	LocalRowLabel = "Here"
)

// Flag descriptions shared between the root help screen and pflag.
const (
	FlagDescConfig  = "Path to config file (default: ~/.config/timein/config.yml)"
	FlagDescNoColor = "Disable colored output"
)
