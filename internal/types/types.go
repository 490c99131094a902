package types

import "time"

// RawSegment is one parsed ranges line. A nil bound is open-ended: nil Start
// means the beginning of the file, nil End means the end of the file.
type RawSegment struct {
	Start *time.Duration
	End   *time.Duration
}

// Segment has both bounds resolved against the probed media duration.
// Invariant: 0 <= Start < End <= total duration.
type Segment struct {
	Start time.Duration
	End   time.Duration
}

func (s Segment) Duration() time.Duration { return s.End - s.Start }
