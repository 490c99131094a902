package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"videocut/internal/domain/timespec"
	"videocut/internal/ports/adapters/ffmpeg"
	"videocut/internal/types"
)

// PlanResult is a dry run of a job: what would be cut, and what would be
// skipped, without touching the output or invoking a single cut.
type PlanResult struct {
	Total    time.Duration
	Segments []types.Segment
	Skipped  []timespec.SkippedSegment
}

// Plan parses, probes and normalizes exactly as Run would, then stops.
func Plan(ctx context.Context, cfg Config) (PlanResult, error) {
	if cfg.Input == "" {
		return PlanResult{}, errors.New("input is empty")
	}
	if cfg.Ranges == "" {
		return PlanResult{}, errors.New("ranges file is empty")
	}
	if _, err := os.Stat(cfg.Ranges); err != nil {
		return PlanResult{}, fmt.Errorf("ranges file not found: %w", err)
	}
	if _, err := os.Stat(cfg.Input); err != nil {
		return PlanResult{}, fmt.Errorf("input not found: %w", err)
	}

	tool := cfg.Tool
	if tool == nil {
		bin := orDefault(cfg.FFprobePath, "ffprobe")
		if _, err := exec.LookPath(bin); err != nil {
			return PlanResult{}, fmt.Errorf("%q not found, install ffmpeg first: %w", bin, err)
		}
		tool = ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath)
	}

	segments, skipped, total, err := resolveSegments(ctx, cfg, tool)
	if err != nil {
		return PlanResult{Total: total, Skipped: skipped}, err
	}
	return PlanResult{Total: total, Segments: segments, Skipped: skipped}, nil
}
