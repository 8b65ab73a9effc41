package timein

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/hlop3z/timein/internal/tzerr"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want Spec
	}{
		{
			name: "bare identifier",
			arg:  "US/Pacific",
			want: Spec{Label: "US/Pacific", Identifier: "US/Pacific"},
		},
		{
			name: "label and identifier",
			arg:  "Office: Europe/Amsterdam",
			want: Spec{Label: "Office", Identifier: "Europe/Amsterdam"},
		},
		{
			name: "no space after colon",
			arg:  "HQ:Asia/Tokyo",
			want: Spec{Label: "HQ", Identifier: "Asia/Tokyo"},
		},
		{
			name: "padded input",
			arg:  "  Home :  UTC  ",
			want: Spec{Label: "Home", Identifier: "UTC"},
		},
		{
			name: "escaped colon in label",
			arg:  `Wall\: Clock: UTC`,
			want: Spec{Label: "Wall: Clock", Identifier: "UTC"},
		},
		{
			name: "escaped colon without separator",
			arg:  `foo\:bar`,
			want: Spec{Label: "foo:bar", Identifier: "foo:bar"},
		},
		{
			name: "remainder keeps later colons",
			arg:  "A: B: C",
			want: Spec{Label: "A", Identifier: "B: C"},
		},
		{
			name: "empty label defaults to identifier",
			arg:  ": UTC",
			want: Spec{Label: "UTC", Identifier: "UTC"},
		},
		{
			name: "empty input",
			arg:  "",
			want: Spec{Label: "", Identifier: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSpec(tt.arg); got != tt.want {
				t.Errorf("ParseSpec(%q) = %+v, want %+v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestResolveSpec(t *testing.T) {
	zone, err := ResolveSpec(Spec{Label: "Office", Identifier: "Europe/Amsterdam"})
	if err != nil {
		t.Fatalf("ResolveSpec error: %v", err)
	}
	if zone.Label != "Office" {
		t.Errorf("Label = %q, want %q", zone.Label, "Office")
	}
	if zone.Location == nil || zone.Location.String() != "Europe/Amsterdam" {
		t.Errorf("Location = %v, want Europe/Amsterdam", zone.Location)
	}
}

func TestResolveSpecUnknown(t *testing.T) {
	_, err := ResolveSpec(ParseSpec("Mars/OlympusMons"))
	if err == nil {
		t.Fatal("ResolveSpec(Mars/OlympusMons) succeeded, want error")
	}
	if !errors.Is(err, ErrInvalidTimezone) {
		t.Errorf("errors.Is(err, ErrInvalidTimezone) = false for %v", err)
	}

	var tze *InvalidTimezoneError
	if !errors.As(err, &tze) {
		t.Fatalf("error type = %T, want *InvalidTimezoneError", err)
	}
	if tze.Input != "Mars/OlympusMons" {
		t.Errorf("Input = %q, want %q", tze.Input, "Mars/OlympusMons")
	}
}

func TestResolveSpecSuggestion(t *testing.T) {
	_, err := ResolveSpec(ParseSpec("Amsterdm"))
	if err == nil {
		t.Fatal("ResolveSpec(Amsterdm) succeeded, want error")
	}

	var tze *InvalidTimezoneError
	if !errors.As(err, &tze) {
		t.Fatalf("error type = %T, want *InvalidTimezoneError", err)
	}
	if want := "did you mean 'Europe/Amsterdam'?"; tze.Suggestion != want {
		t.Errorf("Suggestion = %q, want %q", tze.Suggestion, want)
	}
}

func TestResolveSpecsFailsEagerly(t *testing.T) {
	zones, err := ResolveSpecs([]string{"UTC", "Nowhere/AtAll", "Asia/Tokyo"})
	if err == nil {
		t.Fatal("ResolveSpecs succeeded, want error")
	}
	if zones != nil {
		t.Errorf("zones = %v, want nil on failure", zones)
	}
}

func TestLocalZone(t *testing.T) {
	at := time.Now()

	zone := LocalZone("Here", at)
	if zone.Label != "Here" {
		t.Errorf("Label = %q, want %q", zone.Label, "Here")
	}
	if zone.Location != time.Local {
		t.Errorf("Location = %v, want time.Local", zone.Location)
	}

	// Empty label resolves to the local identifier
	named := LocalZone("", at)
	if named.Label == "" {
		t.Error("empty label should default to the local zone name")
	}
}

func TestParseDate(t *testing.T) {
	base := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

	got, err := ParseDate("now", base)
	if err != nil {
		t.Fatalf("ParseDate(now) error: %v", err)
	}
	if !got.Equal(base) {
		t.Errorf("ParseDate(now) = %v, want %v", got, base)
	}

	_, err = ParseDate("blorp glorp", base)
	if err == nil {
		t.Fatal("ParseDate(blorp glorp) succeeded, want error")
	}
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("errors.Is(err, ErrInvalidDate) = false for %v", err)
	}
	// The underlying coded error stays reachable for rich display
	if !tzerr.Is(err, tzerr.ErrBadDate) {
		t.Errorf("expected %s in error chain, got %v", tzerr.ErrBadDate, err)
	}
}

func TestProjectSingle(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	at := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	zones := []Zone{
		{Label: "UTC", Location: time.UTC},
		{Label: "Delhi", Location: time.FixedZone("IST", 5*3600+1800)},
		{Label: "LA", Location: time.FixedZone("PST", -8*3600)},
	}

	rows, err := p.Project(at, zones)
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	if rows[0].Offset != 0 || rows[0].OffsetLabel != "+0" {
		t.Errorf("reference row offset = %v (%q), want 0 (+0)", rows[0].Offset, rows[0].OffsetLabel)
	}
	if rows[1].Offset != 5.5 {
		t.Errorf("IST offset = %v, want exactly 5.5", rows[1].Offset)
	}
	if rows[1].OffsetLabel != "+5.5" {
		t.Errorf("IST offset label = %q, want +5.5", rows[1].OffsetLabel)
	}
	if rows[2].OffsetLabel != "-8" {
		t.Errorf("PST offset label = %q, want -8", rows[2].OffsetLabel)
	}

	if want := "2024-03-05 10:00:00 UTC"; rows[0].Timestamp != want {
		t.Errorf("UTC timestamp = %q, want %q", rows[0].Timestamp, want)
	}
	if want := "2024-03-05 15:30:00 IST"; rows[1].Timestamp != want {
		t.Errorf("IST timestamp = %q, want %q", rows[1].Timestamp, want)
	}
	if rows[0].Cells != nil {
		t.Errorf("single mode rows carry no cells, got %v", rows[0].Cells)
	}
}

func TestProjectSingleCustomFormat(t *testing.T) {
	p, err := New(WithFormat("%H:%M"))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	at := time.Date(2024, time.March, 5, 10, 51, 0, 0, time.UTC)
	rows, err := p.Project(at, []Zone{{Label: "UTC", Location: time.UTC}})
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}

	// Single-timestamp mode never rounds
	if want := "10:51"; rows[0].Timestamp != want {
		t.Errorf("Timestamp = %q, want %q", rows[0].Timestamp, want)
	}
}

func TestProjectHoursZeroMatchesOmitted(t *testing.T) {
	at := time.Date(2024, time.March, 5, 10, 51, 0, 0, time.UTC)
	zones := []Zone{
		{Label: "UTC", Location: time.UTC},
		{Label: "Tokyo", Location: time.FixedZone("JST", 9*3600)},
	}

	omitted, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	explicit, err := New(WithHours(0))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	a, err := omitted.Project(at, zones)
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}
	b, err := explicit.Project(at, zones)
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("hours=0 output differs from omitted:\n%+v\n%+v", a, b)
	}
}

func TestProjectWindow(t *testing.T) {
	p, err := New(WithHours(3))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	at := time.Date(2024, time.March, 5, 10, 51, 0, 0, time.UTC)
	zones := []Zone{
		{Label: "UTC", Location: time.UTC},
		{Label: "Delhi", Location: time.FixedZone("IST", 5*3600+1800)},
	}

	rows, err := p.Project(at, zones)
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}

	// Default rounding truncates 10:51 to 10:00; three steps add three columns
	wantUTC := []string{"[Mar 05] 10", "11", "12", "13"}
	if !reflect.DeepEqual(rows[0].Cells, wantUTC) {
		t.Errorf("UTC cells = %v, want %v", rows[0].Cells, wantUTC)
	}

	// Fractional offsets surface minutes in every cell
	wantIST := []string{"[Mar 05] 15:30", "16:30", "17:30", "18:30"}
	if !reflect.DeepEqual(rows[1].Cells, wantIST) {
		t.Errorf("IST cells = %v, want %v", rows[1].Cells, wantIST)
	}

	if rows[0].Timestamp != "" {
		t.Errorf("window mode rows carry no timestamp, got %q", rows[0].Timestamp)
	}
}

func TestProjectWindowRoundsUp(t *testing.T) {
	p, err := New(WithHours(1), WithRounding(RoundUp))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	at := time.Date(2024, time.March, 5, 10, 51, 0, 0, time.UTC)
	rows, err := p.Project(at, []Zone{{Label: "UTC", Location: time.UTC}})
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}

	want := []string{"[Mar 05] 11", "12"}
	if !reflect.DeepEqual(rows[0].Cells, want) {
		t.Errorf("cells = %v, want %v", rows[0].Cells, want)
	}
}

func TestProjectWindowDateMarkers(t *testing.T) {
	p, err := New(WithHours(3))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	at := time.Date(2024, time.March, 5, 22, 51, 0, 0, time.UTC)
	rows, err := p.Project(at, []Zone{{Label: "UTC", Location: time.UTC}})
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}

	want := []string{"[Mar 05] 22", "23", "[Mar 06] 00", "01"}
	if !reflect.DeepEqual(rows[0].Cells, want) {
		t.Errorf("cells = %v, want %v", rows[0].Cells, want)
	}
}

func TestProjectWindowAcrossDSTGap(t *testing.T) {
	eastern, err := time.LoadLocation("US/Eastern")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	p, err := New(WithHours(3))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// 2024-03-10 02:00 does not exist in US/Eastern; the window steps one
	// absolute hour per column and the skipped wall-clock hour shows in
	// the labels.
	at := time.Date(2024, time.March, 10, 0, 51, 0, 0, eastern)
	rows, err := p.Project(at, []Zone{
		{Label: "NY", Location: eastern},
		{Label: "UTC", Location: time.UTC},
	})
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}

	wantNY := []string{"[Mar 10] 00", "01", "03", "04"}
	if !reflect.DeepEqual(rows[0].Cells, wantNY) {
		t.Errorf("NY cells = %v, want %v", rows[0].Cells, wantNY)
	}

	// Offset is measured at the window start, before the transition
	if rows[1].OffsetLabel != "+5" {
		t.Errorf("UTC offset label = %q, want +5", rows[1].OffsetLabel)
	}

	wantUTC := []string{"[Mar 10] 05", "06", "07", "08"}
	if !reflect.DeepEqual(rows[1].Cells, wantUTC) {
		t.Errorf("UTC cells = %v, want %v", rows[1].Cells, wantUTC)
	}
}

func TestProjectSortDiffs(t *testing.T) {
	p, err := New(WithSortDiffs())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	at := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	zones := []Zone{
		{Label: "Here", Location: time.UTC},
		{Label: "A", Location: time.FixedZone("P3", 3*3600)},
		{Label: "B", Location: time.FixedZone("P0", 0)},
		{Label: "C", Location: time.FixedZone("P8", 8*3600)},
	}

	rows, err := p.Project(at, zones)
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}

	// Ascending by offset; the equal-offset pair keeps its given order
	wantOrder := []string{"Here", "B", "A", "C"}
	for i, want := range wantOrder {
		if rows[i].Label != want {
			t.Fatalf("row %d label = %q, want %q (rows: %+v)", i, rows[i].Label, want, rows)
		}
	}

	// Row content travels with the row
	if rows[2].OffsetLabel != "+3" {
		t.Errorf("row A offset label = %q, want +3", rows[2].OffsetLabel)
	}
	if rows[2].Timestamp == "" {
		t.Error("sorted rows should keep their timestamps")
	}
}

func TestProjectUnsortedKeepsGivenOrder(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	at := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	zones := []Zone{
		{Label: "C", Location: time.FixedZone("P8", 8*3600)},
		{Label: "A", Location: time.FixedZone("P3", 3*3600)},
	}

	rows, err := p.Project(at, zones)
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}
	if rows[0].Label != "C" || rows[1].Label != "A" {
		t.Errorf("rows reordered without sort-diffs: %+v", rows)
	}
	// Offsets are measured from the first row even when it is not UTC
	if rows[1].Offset != -5 {
		t.Errorf("offset = %v, want -5", rows[1].Offset)
	}
}

func TestSortByOffset(t *testing.T) {
	rows := []Row{
		{Label: "A", Offset: 3},
		{Label: "B", Offset: 0},
		{Label: "B2", Offset: 0},
		{Label: "C", Offset: 8},
		{Label: "D", Offset: -5.5},
	}

	SortByOffset(rows)

	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.Label
	}
	// Equal offsets keep their input order
	want := []string{"D", "B", "B2", "A", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order after sort = %v, want %v", got, want)
	}
}

func TestProjectNoZones(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	_, err = p.Project(time.Now(), nil)
	if err == nil {
		t.Fatal("Project(nil zones) succeeded, want error")
	}
	if !errors.Is(err, ErrUsage) {
		t.Errorf("errors.Is(err, ErrUsage) = false for %v", err)
	}
}
