package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/hlop3z/timein/internal/tzerr"
)

func init() {
	// Force plain mode in tests so style functions return raw text (no ANSI codes).
	SetDefault(&Config{Mode: ModePlain})
}

func TestFormatError_WithContextAndHelp(t *testing.T) {
	err := tzerr.New(tzerr.ErrUnknownTimezone, "unknown timezone \"Amsterdm\"").
		WithZone("Amsterdm").
		WithHelp("did you mean 'Europe/Amsterdam'?")

	output := FormatError(err)

	checks := []string{
		"error",
		"T2001",
		"unknown timezone \"Amsterdm\"",
		"timezone: Amsterdm",
		"help:",
		"did you mean 'Europe/Amsterdam'?",
	}
	for _, want := range checks {
		if !strings.Contains(output, want) {
			t.Errorf("FormatError output missing %q\ngot:\n%s", want, output)
		}
	}
}

func TestFormatError_NotesRenderSeparately(t *testing.T) {
	err := tzerr.New(tzerr.ErrBadDate, "unable to parse date expression").
		WithExpression("next blursday").
		WithNote("expressions are parsed relative to the current instant")

	output := FormatError(err)

	if !strings.Contains(output, "note:") {
		t.Errorf("expected 'note:' in output\ngot:\n%s", output)
	}
	if !strings.Contains(output, "expression: next blursday") {
		t.Errorf("expected expression detail in output\ngot:\n%s", output)
	}
	// Notes must not leak into the detail gutter
	if strings.Contains(output, "notes:") {
		t.Errorf("raw notes key should not be rendered\ngot:\n%s", output)
	}
}

func TestFormatError_WithCause(t *testing.T) {
	cause := errors.New("open config.yml: permission denied")
	err := tzerr.Wrap(tzerr.ErrConfigRead, cause, "failed to read config file")

	output := FormatError(err)

	if !strings.Contains(output, "cause:") {
		t.Errorf("expected 'cause:' in output\ngot:\n%s", output)
	}
	if !strings.Contains(output, "permission denied") {
		t.Errorf("expected cause message in output\ngot:\n%s", output)
	}
}

func TestFormatError_Generic(t *testing.T) {
	err := errors.New("something quite ordinary")

	output := FormatError(err)

	if !strings.Contains(output, "error: something quite ordinary") {
		t.Errorf("unexpected generic format:\n%s", output)
	}
	if strings.Contains(output, "[") {
		t.Errorf("generic errors carry no code:\n%s", output)
	}
}

func TestFormatError_Nil(t *testing.T) {
	if got := FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty", got)
	}
}

func TestFormatWarning(t *testing.T) {
	output := FormatWarning("config reload failed, keeping previous settings")

	if !strings.Contains(output, "warning: config reload failed") {
		t.Errorf("unexpected warning format:\n%s", output)
	}
	if !strings.HasSuffix(output, "\n") {
		t.Errorf("warning should end with newline: %q", output)
	}
}

func TestFormatHelp(t *testing.T) {
	output := FormatHelp("run 'timein tz --help' for usage")

	if !strings.Contains(output, "help: run 'timein tz --help' for usage") {
		t.Errorf("unexpected help format:\n%s", output)
	}
}
