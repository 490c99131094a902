package ports

import (
	"context"
	"time"

	"videocut/internal/types"
)

// VideoTool is the external media tool boundary. Every call is a blocking,
// synchronous subprocess invocation; a non-zero exit surfaces as an error
// carrying the tool's combined output.
type VideoTool interface {
	// ProbeDuration returns the total duration of the input file.
	ProbeDuration(ctx context.Context, input string) (time.Duration, error)

	// Cut extracts seg from input into out. Fast (stream-copy) cuts are
	// keyframe-accurate only; accurate cuts re-encode video for frame-exact
	// boundaries.
	Cut(ctx context.Context, input string, seg types.Segment, out string, accurate bool) error

	// Concat joins the clips into out in order without re-encoding.
	Concat(ctx context.Context, clips []string, out string) error
}
