package timespec

import (
	"time"

	"videocut/internal/types"
)

// SkippedSegment records a raw segment that was dropped during normalization
// because it covered no time after clamping. Skips are not fatal on their
// own; the caller decides how to report them.
type SkippedSegment struct {
	Index int // 1-based position in the raw list
	Start time.Duration
	End   time.Duration
}

// Normalize resolves open-ended bounds against the probed total duration and
// validates every segment, preserving input order.
//
// A negative bound or a start at/past the total duration aborts the whole
// job. An end past the total duration is clamped silently; if clamping leaves
// the segment empty it is skipped and reported. An empty result is
// ErrNoValidSegments: a job must never quietly produce an empty output.
func Normalize(raw []types.RawSegment, total time.Duration) ([]types.Segment, []SkippedSegment, error) {
	var segments []types.Segment
	var skipped []SkippedSegment
	for i, r := range raw {
		var start time.Duration
		if r.Start != nil {
			start = *r.Start
		}
		end := total
		if r.End != nil {
			end = *r.End
		}

		if start < 0 {
			return nil, nil, &NegativeTimeError{Value: start}
		}
		if end < 0 {
			return nil, nil, &NegativeTimeError{Value: end}
		}
		if start >= total {
			return nil, nil, &BeyondDurationError{Start: start, Total: total}
		}
		if end > total {
			end = total
		}
		if end <= start {
			skipped = append(skipped, SkippedSegment{Index: i + 1, Start: start, End: end})
			continue
		}
		segments = append(segments, types.Segment{Start: start, End: end})
	}
	if len(segments) == 0 {
		return nil, skipped, ErrNoValidSegments
	}
	return segments, skipped, nil
}
