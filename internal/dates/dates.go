// Package dates resolves date flag values into absolute instants. Absolute
// forms are delegated to dateparse, relative natural language to when; the
// rest of the program only ever sees a resolved time.Time.
package dates

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/hlop3z/timein/internal/tzerr"
)

// parser recognizes English expressions like "tomorrow at 5pm" or
// "in 3 hours". Rules are registered once at startup.
var parser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// Parse resolves a date expression relative to base. The literal "now" (or
// an empty string) returns base unchanged. Absolute forms like
// "2024-03-05 15:04" are interpreted in base's location; anything else is
// handed to the natural-language parser.
func Parse(expr string, base time.Time) (time.Time, error) {
	s := strings.TrimSpace(expr)
	if s == "" || strings.EqualFold(s, "now") {
		return base, nil
	}

	if t, err := dateparse.ParseIn(s, base.Location()); err == nil {
		return t, nil
	}

	if r, err := parser.Parse(s, base); err == nil && r != nil {
		return r.Time, nil
	}

	return time.Time{}, tzerr.Newf(tzerr.ErrBadDate, "unable to parse date expression %q", s).WithExpression(s)
}
