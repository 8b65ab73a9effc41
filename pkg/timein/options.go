package timein

// DefaultFormat is the strftime pattern used for single-timestamp output
// when no format is configured.
const DefaultFormat = "%Y-%m-%d %H:%M:%S %Z"

// Rounding mode names accepted by WithRounding.
const (
	RoundDown    = "down"
	RoundUp      = "up"
	RoundNearest = "nearest"
)

// Config holds all configuration options for a Projector.
type Config struct {
	// Format is the strftime pattern for single-timestamp output.
	// Default: DefaultFormat.
	Format string

	// Hours, when positive, switches output to an hour window of
	// Hours+1 columns. Zero keeps single-timestamp output.
	Hours int

	// Rounding aligns the window start to a wall-clock hour boundary.
	// Valid values: "down", "up", "nearest". Default: "down".
	// It has no effect in single-timestamp mode.
	Rounding string

	// SortDiffs reorders output rows by ascending offset when true.
	SortDiffs bool

	// Logger is used for logging operations.
	// If nil, no logging is performed.
	Logger Logger
}

// Logger is the interface for logging operations.
// It's compatible with the standard library's log.Logger.
type Logger interface {
	// Printf writes a formatted message to the log.
	Printf(format string, v ...any)
}

// Option is a functional option for configuring a Projector.
type Option func(*Config)

// WithFormat sets the strftime pattern for single-timestamp output.
// An empty pattern falls back to DefaultFormat.
func WithFormat(format string) Option {
	return func(c *Config) {
		c.Format = format
	}
}

// WithHours sets the number of additional hourly columns to render.
// Zero keeps single-timestamp output.
func WithHours(n int) Option {
	return func(c *Config) {
		c.Hours = n
	}
}

// WithRounding sets the rounding mode for the window start.
// Valid values: "down", "up", "nearest".
func WithRounding(mode string) Option {
	return func(c *Config) {
		c.Rounding = mode
	}
}

// WithSortDiffs reorders output rows by ascending offset from the first row.
func WithSortDiffs() Option {
	return func(c *Config) {
		c.SortDiffs = true
	}
}

// WithLogger sets the logger for the projector.
// If not set, no logging is performed.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
