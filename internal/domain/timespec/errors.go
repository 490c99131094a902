package timespec

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoSegments is returned when the ranges text contains no segment lines at
// all (only blanks and comments). Distinct from ErrNoValidSegments, which is
// a normalization-time condition.
var ErrNoSegments = errors.New("no segments parsed from ranges")

// ErrNoValidSegments is returned when every raw segment was skipped during
// normalization, leaving nothing to cut.
var ErrNoValidSegments = errors.New("no valid segments after validation")

// TimeFormatError reports a token that matches none of the accepted time
// grammars.
type TimeFormatError struct {
	Token string
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format: %q", e.Token)
}

// SyntaxError attaches a 1-based line number to a ranges parsing failure.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *SyntaxError) Unwrap() error { return e.Err }

// NegativeTimeError reports a resolved segment bound below zero.
type NegativeTimeError struct {
	Value time.Duration
}

func (e *NegativeTimeError) Error() string {
	return fmt.Sprintf("negative time %.3fs is not allowed", e.Value.Seconds())
}

// BeyondDurationError reports a segment starting at or past the end of the
// media.
type BeyondDurationError struct {
	Start time.Duration
	Total time.Duration
}

func (e *BeyondDurationError) Error() string {
	return fmt.Sprintf("segment start %.3fs is beyond media duration %.3fs", e.Start.Seconds(), e.Total.Seconds())
}
