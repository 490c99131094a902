// Package pipeline wires parsing, probing, normalization, cutting and
// concatenation into one job.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"videocut/internal/domain/timespec"
	"videocut/internal/ports"
	"videocut/internal/ports/adapters/ffmpeg"
	"videocut/internal/types"
)

// ErrOutputExists is returned when the destination already exists and
// overwriting was not requested.
var ErrOutputExists = errors.New("output exists")

type Config struct {
	Input    string // input media file
	Ranges   string // ranges text file
	Output   string // destination media file
	Accurate bool   // re-encode video for frame-accurate cuts
	Force    bool   // overwrite an existing output
	KeepTemp bool   // retain the job workspace

	// WorkRoot is the directory job workspaces are created under. Empty
	// means the system temp dir. Injected so callers control placement.
	WorkRoot string

	FFmpegPath  string
	FFprobePath string

	Logf func(format string, args ...any)

	// Tool overrides the ffmpeg adapter; used by tests.
	Tool ports.VideoTool
}

// Validate checks the filesystem preconditions: ranges and input must exist,
// the output must not (unless Force).
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("input is empty")
	}
	if c.Ranges == "" {
		return errors.New("ranges file is empty")
	}
	if c.Output == "" {
		return errors.New("output is empty")
	}
	if _, err := os.Stat(c.Ranges); err != nil {
		return fmt.Errorf("ranges file not found: %w", err)
	}
	if _, err := os.Stat(c.Input); err != nil {
		return fmt.Errorf("input not found: %w", err)
	}
	if _, err := os.Stat(c.Output); err == nil && !c.Force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, c.Output)
	}
	return nil
}

// Run executes one job: validate, parse, probe, normalize, cut each segment
// into a fresh workspace, concatenate. Strictly sequential; no step is
// retried. The workspace is removed on every exit path unless KeepTemp.
func Run(ctx context.Context, cfg Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	tool := cfg.Tool
	if tool == nil {
		// A missing binary must fail before any work starts.
		for _, bin := range []string{orDefault(cfg.FFmpegPath, "ffmpeg"), orDefault(cfg.FFprobePath, "ffprobe")} {
			if _, err := exec.LookPath(bin); err != nil {
				return fmt.Errorf("%q not found, install ffmpeg first: %w", bin, err)
			}
		}
		tool = ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath)
	}

	segments, skipped, total, err := resolveSegments(ctx, cfg, tool)
	for _, s := range skipped {
		logf("skipping empty segment %d: start=%.3fs end=%.3fs", s.Index, s.Start.Seconds(), s.End.Seconds())
	}
	if err != nil {
		return err
	}
	logf("input duration: %s, %d segment(s) to cut", timespec.FormatTime(total), len(segments))

	workDir := filepath.Join(workRoot(cfg.WorkRoot), "videocut_job_"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	defer func() {
		if cfg.KeepTemp {
			logf("keeping temp workspace: %s", workDir)
			return
		}
		// Best-effort; cleanup failure never fails the job.
		_ = os.RemoveAll(workDir)
	}()

	clips := make([]string, 0, len(segments))
	for i, seg := range segments {
		clip := filepath.Join(workDir, fmt.Sprintf("segment_%03d.mp4", i+1))
		logf("cutting segment %d/%d: %s - %s", i+1, len(segments), timespec.FormatTime(seg.Start), timespec.FormatTime(seg.End))
		if err := tool.Cut(ctx, cfg.Input, seg, clip, cfg.Accurate); err != nil {
			return fmt.Errorf("cut segment %d: %w", i+1, err)
		}
		clips = append(clips, clip)
	}

	if err := ensureOutputDir(cfg.Output); err != nil {
		return err
	}
	if cfg.Force {
		if err := os.Remove(cfg.Output); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove existing output: %w", err)
		}
	}

	logf("concatenating %d clip(s)", len(clips))
	if err := tool.Concat(ctx, clips, cfg.Output); err != nil {
		// Never leave a half-written file at the destination.
		_ = os.Remove(cfg.Output)
		return fmt.Errorf("concat: %w", err)
	}
	return nil
}

// resolveSegments runs the parse, probe and normalize steps shared by Run
// and Plan.
func resolveSegments(ctx context.Context, cfg Config, tool ports.VideoTool) ([]types.Segment, []timespec.SkippedSegment, time.Duration, error) {
	text, err := os.ReadFile(cfg.Ranges)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("read ranges: %w", err)
	}
	raw, err := timespec.ParseRanges(string(text))
	if err != nil {
		return nil, nil, 0, fmt.Errorf("parse ranges: %w", err)
	}

	total, err := tool.ProbeDuration(ctx, cfg.Input)
	if err != nil {
		return nil, nil, 0, err
	}

	segments, skipped, err := timespec.Normalize(raw, total)
	if err != nil {
		return nil, skipped, total, err
	}
	return segments, skipped, total, nil
}

func ensureOutputDir(output string) error {
	dir := filepath.Dir(output)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

func workRoot(root string) string {
	if root == "" {
		return os.TempDir()
	}
	return root
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// ensure the adapter satisfies the port
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
