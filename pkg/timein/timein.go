package timein

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/hlop3z/timein/internal/clock"
	"github.com/hlop3z/timein/internal/dates"
	"github.com/hlop3z/timein/internal/tzdata"
)

// Spec is a parsed timezone argument: a display label and the identifier
// it names.
type Spec struct {
	Label      string
	Identifier string
}

// ParseSpec parses a timezone argument of the form "Label: Identifier" or a
// bare "Identifier". The argument splits at its first unescaped colon, with
// `\:` producing a literal colon. Both sides are trimmed, and a missing or
// empty label defaults to the identifier. ParseSpec never fails; resolution
// happens in ResolveSpec.
func ParseSpec(arg string) Spec {
	var left strings.Builder
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		if c == '\\' && i+1 < len(arg) && arg[i+1] == ':' {
			left.WriteByte(':')
			i++
			continue
		}
		if c == ':' {
			label := strings.TrimSpace(left.String())
			identifier := strings.TrimSpace(strings.ReplaceAll(arg[i+1:], `\:`, ":"))
			if label == "" {
				label = identifier
			}
			return Spec{Label: label, Identifier: identifier}
		}
		left.WriteByte(c)
	}

	identifier := strings.TrimSpace(left.String())
	return Spec{Label: identifier, Identifier: identifier}
}

// Zone is a resolved timezone with its display label.
type Zone struct {
	Label    string
	Location *time.Location
}

// ResolveSpec resolves a parsed Spec against the timezone database.
// Unknown identifiers yield an *InvalidTimezoneError carrying a close-match
// suggestion when one exists.
func ResolveSpec(spec Spec) (Zone, error) {
	loc, err := tzdata.Resolve(spec.Identifier)
	if err != nil {
		return Zone{}, &InvalidTimezoneError{
			Input:      spec.Identifier,
			Suggestion: tzdata.Suggest(spec.Identifier),
			Cause:      err,
		}
	}
	return Zone{Label: spec.Label, Location: loc}, nil
}

// ResolveSpecs parses and resolves a list of timezone arguments. The first
// failure aborts the whole call; no partial result is returned.
func ResolveSpecs(args []string) ([]Zone, error) {
	zones := make([]Zone, 0, len(args))
	for _, arg := range args {
		zone, err := ResolveSpec(ParseSpec(arg))
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	return zones, nil
}

// LocalZone returns the host's local timezone as a Zone. An empty label
// defaults to the resolved local identifier at the given instant.
func LocalZone(label string, at time.Time) Zone {
	if label == "" {
		label = tzdata.LocalName(at)
	}
	return Zone{Label: label, Location: time.Local}
}

// ParseDate resolves a date expression ("now", an absolute datetime, or
// relative natural language) into an instant, relative to base.
func ParseDate(expr string, base time.Time) (time.Time, error) {
	at, err := dates.Parse(expr, base)
	if err != nil {
		return time.Time{}, &InvalidDateError{Input: expr, Cause: err}
	}
	return at, nil
}

// Row is one output line of a projection.
type Row struct {
	// Label is the zone's display name.
	Label string

	// Offset is the zone's offset in hours relative to the first zone,
	// measured at the projection's reference instant. Fractional offsets
	// are exact (e.g. 5.5).
	Offset float64

	// OffsetLabel is the signed display form of Offset, e.g. "+5.5".
	OffsetLabel string

	// Timestamp is the formatted local time. Set in single-timestamp
	// mode only.
	Timestamp string

	// Cells are the hour-window columns. Set in window mode only.
	Cells []string
}

// Projector converts an instant into per-zone output rows.
//
// Example:
//
//	p, err := timein.New(timein.WithHours(8))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	zones, err := timein.ResolveSpecs([]string{"Office: Europe/Amsterdam", "US/Pacific"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows, err := p.Project(time.Now(), zones)
type Projector struct {
	config *Config
	round  clock.Rounding
}

// New creates a Projector with the given options.
func New(opts ...Option) (*Projector, error) {
	cfg := &Config{
		Format:   DefaultFormat,
		Rounding: RoundDown,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.Hours < 0 {
		return nil, &UsageError{Message: fmt.Sprintf("hours must be zero or positive, got %d", cfg.Hours)}
	}

	round, err := clock.ParseRounding(cfg.Rounding)
	if err != nil {
		return nil, &UsageError{Message: err.Error()}
	}

	return &Projector{config: cfg, round: round}, nil
}

// Config returns a copy of the projector configuration.
func (p *Projector) Config() Config {
	return *p.config
}

// Project renders the instant in every zone. The first zone is the
// reference: all offsets are measured against it, and in window mode its
// wall clock anchors the rounded window start. Window columns step one
// absolute hour regardless of DST transitions inside the window; each cell
// still shows the correct local hour, so a skipped or repeated wall-clock
// hour is visible in the labels.
func (p *Projector) Project(at time.Time, zones []Zone) ([]Row, error) {
	if len(zones) == 0 {
		return nil, &UsageError{Message: "no timezones to project"}
	}

	reference := zones[0].Location
	rows := make([]Row, 0, len(zones))

	if p.config.Hours > 0 {
		start := clock.Round(at.In(reference), p.round)
		instants := clock.Window(start, p.config.Hours)
		p.log("projecting %d zones over %d columns from %s", len(zones), len(instants), start.Format(time.RFC3339))

		for _, zone := range zones {
			offset := clock.OffsetHours(start, reference, zone.Location)
			rows = append(rows, Row{
				Label:       zone.Label,
				Offset:      offset,
				OffsetLabel: clock.FormatOffset(offset),
				Cells:       hourCells(instants, zone.Location),
			})
		}
	} else {
		p.log("projecting %d zones at %s", len(zones), at.Format(time.RFC3339))

		for _, zone := range zones {
			offset := clock.OffsetHours(at, reference, zone.Location)
			rows = append(rows, Row{
				Label:       zone.Label,
				Offset:      offset,
				OffsetLabel: clock.FormatOffset(offset),
				Timestamp:   strftime.Format(p.config.Format, at.In(zone.Location)),
			})
		}
	}

	if p.config.SortDiffs {
		SortByOffset(rows)
	}

	return rows, nil
}

// SortByOffset reorders rows in place by ascending Offset, stable for ties.
func SortByOffset(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Offset < rows[j].Offset
	})
}

// hourCells renders the window columns for one zone. A cell shows the local
// hour, with minutes added when the zone's offset leaves a minute component.
// A bracketed date marker prefixes the first cell and every cell whose local
// date differs from the previous column's.
func hourCells(instants []time.Time, loc *time.Location) []string {
	cells := make([]string, 0, len(instants))
	prevDate := ""
	for i, instant := range instants {
		local := instant.In(loc)

		cell := strftime.Format("%H", local)
		if local.Minute() != 0 {
			cell = strftime.Format("%H:%M", local)
		}

		date := strftime.Format("%b %d", local)
		if i == 0 || date != prevDate {
			cell = "[" + date + "] " + cell
		}
		prevDate = date

		cells = append(cells, cell)
	}
	return cells
}

// log logs a message if a logger is configured.
func (p *Projector) log(format string, v ...any) {
	if p.config.Logger != nil {
		p.config.Logger.Printf(format, v...)
	}
}
