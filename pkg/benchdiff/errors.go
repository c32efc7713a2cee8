package benchdiff

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two fatal resolution conditions. Per-cell
// issues (missing values, unparsable numbers, zero baselines) are never
// errors; they degrade to an absent delta rendered as a placeholder.
var (
	// ErrUnresolvableKey indicates that no key columns common to both
	// datasets could be determined through any fallback.
	ErrUnresolvableKey = errors.New("could not determine key columns; specify key columns present in both inputs")

	// ErrNoComparableMetrics indicates that no metric column is present
	// in both datasets.
	ErrNoComparableMetrics = errors.New("no comparable metrics found; specify metric columns present in both inputs")
)

// ResolutionError wraps a fatal resolution failure with the option the
// user can set to override the heuristic.
//
// Example:
//
//	err := &ResolutionError{
//	    Stage:  "key",
//	    Option: "--key",
//	    Err:    ErrUnresolvableKey,
//	}
type ResolutionError struct {
	// Stage is what was being resolved: "key" or "metrics".
	Stage string

	// Option names the CLI flag that overrides the heuristic.
	Option string

	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s resolution failed (use %s to override): %v", e.Stage, e.Option, e.Err)
}

// Unwrap returns the underlying error so errors.Is works against the
// sentinels.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}
