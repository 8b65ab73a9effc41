// Package tzdata resolves timezone identifiers against the IANA database and
// carries the static timezone and country tables bundled into the binary.
package tzdata

import (
	"sort"
	"strings"
	"time"

	// Bundle the IANA database so resolution works on hosts without
	// a system zoneinfo directory.
	_ "time/tzdata"

	"github.com/hlop3z/timein/internal/tzerr"
)

// Resolve looks up an IANA timezone identifier. Identifiers that fail
// verbatim are retried with a "US/" prefix, so "Eastern" resolves as
// "US/Eastern". The returned error carries a did-you-mean suggestion when a
// known name is within edit distance of the input.
func Resolve(identifier string) (*time.Location, error) {
	name := strings.TrimSpace(identifier)
	if name == "" {
		return nil, tzerr.New(tzerr.ErrUnknownTimezone, "empty timezone identifier")
	}

	if loc, err := time.LoadLocation(name); err == nil {
		return loc, nil
	}
	if loc, err := time.LoadLocation("US/" + name); err == nil {
		return loc, nil
	}

	rerr := tzerr.Newf(tzerr.ErrUnknownTimezone, "unknown timezone %q", name).WithZone(name)
	if s := Suggest(name); s != "" {
		rerr = rerr.WithHelp(s)
	}
	return nil, rerr
}

// Suggest returns a did-you-mean hint for an identifier, or "" when nothing
// in the bundled zone list is a close match.
func Suggest(identifier string) string {
	return tzerr.SuggestSimilar(strings.TrimSpace(identifier), zoneNames)
}

// Names returns the bundled timezone identifiers, sorted.
func Names() []string {
	out := make([]string, len(zoneNames))
	copy(out, zoneNames)
	sort.Strings(out)
	return out
}

// Countries returns the bundled country/capital table.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// LocalName reports a human-useful name for the host timezone: the IANA name
// when the runtime knows it, else the zone abbreviation in effect at t.
func LocalName(t time.Time) string {
	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}
	abbr, _ := t.In(time.Local).Zone()
	return abbr
}
