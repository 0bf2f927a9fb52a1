package ssss

import "errors"

// Error kinds surfaced by Split and Combine. Detailed failures wrap one of
// these sentinels, so callers can match with errors.Is.
var (
	// ErrInvalidParameter covers thresholds below 2, share counts below
	// the threshold, out-of-range secret lengths and similar caller
	// mistakes.
	ErrInvalidParameter = errors.New("ssss: invalid parameter")

	// ErrInvalidShare covers shares with a zero index, an embedded
	// threshold that disagrees with the requested one, or payload lengths
	// that differ within a batch.
	ErrInvalidShare = errors.New("ssss: invalid share")

	// ErrLinearDependence is returned when the reconstruction system has
	// no unique solution, typically because one share was entered twice.
	ErrLinearDependence = errors.New("ssss: shares inconsistent; perhaps a single share was used twice")

	// ErrIO is returned when the entropy source fails during a split.
	ErrIO = errors.New("ssss: i/o error")
)
