package tzerr

import (
	"errors"
	"strings"
	"testing"
)

// -----------------------------------------------------------------------------
// Constructor Tests
// -----------------------------------------------------------------------------

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    Code
		message string
	}{
		{
			name:    "usage error",
			code:    ErrUsage,
			message: "no timezones specified",
		},
		{
			name:    "unknown timezone",
			code:    ErrUnknownTimezone,
			message: `unknown timezone "Mars/OlympusMons"`,
		},
		{
			name:    "bad date",
			code:    ErrBadDate,
			message: "unable to parse date expression",
		},
		{
			name:    "config parse error",
			code:    ErrConfigParse,
			message: "config file is not valid YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message)
			if err == nil {
				t.Fatal("expected non-nil error")
			}
			if err.GetCode() != tt.code {
				t.Errorf("code = %v, want %v", err.GetCode(), tt.code)
			}
			if err.GetMessage() != tt.message {
				t.Errorf("message = %v, want %v", err.GetMessage(), tt.message)
			}
			if err.GetCause() != nil {
				t.Error("expected nil cause for New()")
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("wrap existing error", func(t *testing.T) {
		cause := errors.New("unknown time zone Amsterdm")
		err := Wrap(ErrUnknownTimezone, cause, "failed to resolve timezone")

		if err.GetCode() != ErrUnknownTimezone {
			t.Errorf("code = %v, want %v", err.GetCode(), ErrUnknownTimezone)
		}
		if err.GetCause() != cause {
			t.Error("cause should be the wrapped error")
		}
		if err.GetMessage() != "failed to resolve timezone" {
			t.Errorf("message = %v, want %v", err.GetMessage(), "failed to resolve timezone")
		}
	})

	t.Run("wrap nil error behaves like New", func(t *testing.T) {
		err := Wrap(ErrUsage, nil, "usage error")

		if err.GetCode() != ErrUsage {
			t.Errorf("code = %v, want %v", err.GetCode(), ErrUsage)
		}
		if err.GetCause() != nil {
			t.Error("cause should be nil when wrapping nil")
		}
	})
}

func TestNewf(t *testing.T) {
	err := Newf(ErrUnknownTimezone, "unknown timezone %q", "Narnia/Lantern")

	want := `unknown timezone "Narnia/Lantern"`
	if err.GetMessage() != want {
		t.Errorf("message = %v, want %v", err.GetMessage(), want)
	}
}

// -----------------------------------------------------------------------------
// Context Builder Tests
// -----------------------------------------------------------------------------

func TestWith(t *testing.T) {
	err := New(ErrUnknownTimezone, "unknown timezone").
		WithZone("Amsterdm").
		With("attempts", 2)

	ctx := err.GetContext()
	if ctx["timezone"] != "Amsterdm" {
		t.Errorf("timezone = %v, want Amsterdm", ctx["timezone"])
	}
	if ctx["attempts"] != 2 {
		t.Errorf("attempts = %v, want 2", ctx["attempts"])
	}
}

func TestWithHelp(t *testing.T) {
	err := New(ErrUnknownTimezone, "unknown timezone").
		WithHelp("did you mean 'Europe/Amsterdam'?").
		WithHelp("run 'timein zones' to list known identifiers")

	helps := err.Helps()
	if len(helps) != 2 {
		t.Fatalf("len(helps) = %d, want 2", len(helps))
	}
	if helps[0] != "did you mean 'Europe/Amsterdam'?" {
		t.Errorf("helps[0] = %q", helps[0])
	}
}

func TestErrorString(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ErrBadDate, cause, "unable to parse date expression").
		WithExpression("next blarghday")

	got := err.Error()
	for _, want := range []string{"[T2002]", "unable to parse date expression", "expression: next blarghday", "cause: boom"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}
}

// -----------------------------------------------------------------------------
// errors.Is / errors.As Tests
// -----------------------------------------------------------------------------

func TestIs(t *testing.T) {
	err := New(ErrUnknownTimezone, "unknown timezone")

	if !errors.Is(err, New(ErrUnknownTimezone, "other message")) {
		t.Error("errors with the same code should match")
	}
	if errors.Is(err, New(ErrBadDate, "unknown timezone")) {
		t.Error("errors with different codes should not match")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{
			name: "coded error",
			err:  New(ErrUsage, "bad usage"),
			want: ErrUsage,
		},
		{
			name: "wrapped coded error",
			err:  Wrap(ErrConfigRead, errors.New("io"), "cannot read config"),
			want: ErrConfigRead,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.want {
				t.Errorf("GetErrorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	if !HasCode(New(ErrUsage, "x")) {
		t.Error("HasCode should be true for coded errors")
	}
	if HasCode(errors.New("x")) {
		t.Error("HasCode should be false for plain errors")
	}
}
