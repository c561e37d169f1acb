// Package errs wraps cockroachdb/errors so call sites get stack traces
// and sentinel marking without importing the library directly.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as a sentinel while the original cause stays in
// the chain. Marks are only visible to Is below, not to stdlib errors.Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches target, including sentinels attached
// with Mark. Sentinel checks on usecase errors must go through this.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// ExtractStackLines renders the error with its stack trace and returns
// at most maxLines lines, for structured log output.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
