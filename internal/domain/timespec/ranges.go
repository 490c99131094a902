package timespec

import (
	"fmt"
	"strings"
	"time"

	"videocut/internal/types"
)

// ParseRanges parses the text of a ranges specification into raw segments.
//
// One segment per line: "<start> - <end>", where either side may be empty to
// mean "from the beginning" / "to the end". Blank lines and lines starting
// with '#' are ignored. The line splits on the first hyphen, so a stray
// hyphen inside a time token surfaces as a time format error instead.
func ParseRanges(text string) ([]types.RawSegment, error) {
	var segments []types.RawSegment
	for i, line := range strings.Split(text, "\n") {
		raw := strings.TrimSpace(line)
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		left, right, found := strings.Cut(raw, "-")
		if !found {
			return nil, &SyntaxError{
				Line: i + 1,
				Err:  fmt.Errorf("expected '-' between start and end: %q", raw),
			}
		}

		var seg types.RawSegment
		if l := strings.TrimSpace(left); l != "" {
			start, err := ParseTime(l)
			if err != nil {
				return nil, &SyntaxError{Line: i + 1, Err: err}
			}
			seg.Start = durationPtr(start)
		}
		if r := strings.TrimSpace(right); r != "" {
			end, err := ParseTime(r)
			if err != nil {
				return nil, &SyntaxError{Line: i + 1, Err: err}
			}
			seg.End = durationPtr(end)
		}
		segments = append(segments, seg)
	}
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	return segments, nil
}

func durationPtr(d time.Duration) *time.Duration { return &d }
