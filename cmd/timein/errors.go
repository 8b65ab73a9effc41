package main

import (
	"errors"

	"github.com/hlop3z/timein/internal/cli"
	"github.com/hlop3z/timein/internal/tzerr"
	"github.com/hlop3z/timein/pkg/timein"
)

// formatClientError renders any error returned by the command tree as a
// cargo-style diagnostic. Coded errors (including those wrapped inside the
// library's typed errors) keep their code, context, and help lines; library
// usage errors are assigned the usage code; everything else, cobra's own
// flag and argument errors included, falls back to the generic form with a
// pointer at --help.
func formatClientError(err error) string {
	var te *tzerr.Error
	if errors.As(err, &te) {
		return cli.FormatError(te)
	}

	var ue *timein.UsageError
	if errors.As(err, &ue) {
		return cli.FormatError(tzerr.New(tzerr.ErrUsage, ue.Message))
	}

	return cli.FormatError(err) + "\n" + cli.FormatHelp("run 'timein --help' for usage")
}
