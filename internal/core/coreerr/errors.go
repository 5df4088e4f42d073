// Package coreerr holds the conditions the analysis core reports to its callers.
// The core never logs: every condition is returned, wrapped with context, and
// matched by callers with errors.Is.
package coreerr

import "github.com/pkg/errors"

var (
	// ErrInvalidParameter is returned for a non-positive K or a malformed observation.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptyInput is returned when there is nothing to work on, such as an empty
	// permutation to export. It is informational and never fatal.
	ErrEmptyInput = errors.New("empty input")
)
