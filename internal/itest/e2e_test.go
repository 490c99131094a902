//go:build integration

package itest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"videocut/internal/pipeline"
)

const e2eTimeout = 5 * time.Minute

func writeRanges(t *testing.T, dir, text string) string {
	t.Helper()
	path := filepath.Join(dir, "ranges.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write ranges: %v", err)
	}
	return path
}

func TestE2E_FastCut(t *testing.T) {
	requireTools(t)
	tmp := t.TempDir()
	in := makeFixture(t, tmp, 20)
	ranges := writeRanges(t, tmp, "- 00:00:05\n00:00:07 - 00:00:12\n00:00:15 -\n")
	out := filepath.Join(tmp, "output.mp4")

	ctx, cancel := context.WithTimeout(context.Background(), e2eTimeout)
	defer cancel()

	cfg := pipeline.Config{
		Input:    in,
		Ranges:   ranges,
		Output:   out,
		WorkRoot: tmp,
		Logf:     t.Logf,
	}
	if err := pipeline.Run(ctx, cfg); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	dur, err := probeDurationSeconds(out)
	if err != nil {
		t.Fatalf("probe output: %v", err)
	}
	// three 5s windows; fast mode rounds to keyframes
	if dur < 13 || dur > 17 {
		t.Fatalf("output duration = %.2fs, want ~15s", dur)
	}
}

func TestE2E_ClampedEnd(t *testing.T) {
	requireTools(t)
	tmp := t.TempDir()
	in := makeFixture(t, tmp, 20)
	ranges := writeRanges(t, tmp, "00:00:18 - 00:00:25\n")
	out := filepath.Join(tmp, "output.mp4")

	ctx, cancel := context.WithTimeout(context.Background(), e2eTimeout)
	defer cancel()

	cfg := pipeline.Config{Input: in, Ranges: ranges, Output: out, WorkRoot: tmp}
	if err := pipeline.Run(ctx, cfg); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	dur, err := probeDurationSeconds(out)
	if err != nil {
		t.Fatalf("probe output: %v", err)
	}
	if dur < 1 || dur > 3.5 {
		t.Fatalf("output duration = %.2fs, want ~2s", dur)
	}
}

func TestE2E_AccurateCut(t *testing.T) {
	requireTools(t)
	tmp := t.TempDir()
	in := makeFixture(t, tmp, 20)
	ranges := writeRanges(t, tmp, "00:00:07.5 - 00:00:12.5\n")
	out := filepath.Join(tmp, "output.mp4")

	ctx, cancel := context.WithTimeout(context.Background(), e2eTimeout)
	defer cancel()

	cfg := pipeline.Config{Input: in, Ranges: ranges, Output: out, WorkRoot: tmp, Accurate: true}
	if err := pipeline.Run(ctx, cfg); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	dur, err := probeDurationSeconds(out)
	if err != nil {
		t.Fatalf("probe output: %v", err)
	}
	if dur < 4.7 || dur > 5.3 {
		t.Fatalf("output duration = %.2fs, want ~5s (frame-accurate)", dur)
	}
}

func TestE2E_RerunWithForce(t *testing.T) {
	requireTools(t)
	tmp := t.TempDir()
	in := makeFixture(t, tmp, 20)
	ranges := writeRanges(t, tmp, "00:00:02 - 00:00:06\n")
	out := filepath.Join(tmp, "output.mp4")

	ctx, cancel := context.WithTimeout(context.Background(), e2eTimeout)
	defer cancel()

	cfg := pipeline.Config{Input: in, Ranges: ranges, Output: out, WorkRoot: tmp}
	if err := pipeline.Run(ctx, cfg); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read first output: %v", err)
	}

	if err := pipeline.Run(ctx, cfg); err == nil {
		t.Fatalf("expected second run without force to fail")
	}

	cfg.Force = true
	if err := pipeline.Run(ctx, cfg); err != nil {
		t.Fatalf("forced rerun failed: %v", err)
	}
	second, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read second output: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("forced rerun output size changed: %d vs %d", len(first), len(second))
	}
}

func TestE2E_KeepTemp(t *testing.T) {
	requireTools(t)
	tmp := t.TempDir()
	in := makeFixture(t, tmp, 20)
	ranges := writeRanges(t, tmp, "0 - 3\n")
	out := filepath.Join(tmp, "output.mp4")
	workRoot := filepath.Join(tmp, "work")

	ctx, cancel := context.WithTimeout(context.Background(), e2eTimeout)
	defer cancel()

	cfg := pipeline.Config{Input: in, Ranges: ranges, Output: out, WorkRoot: workRoot, KeepTemp: true}
	if err := pipeline.Run(ctx, cfg); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	entries, err := os.ReadDir(workRoot)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one retained workspace, got %v (err=%v)", entries, err)
	}
	clips, err := filepath.Glob(filepath.Join(workRoot, entries[0].Name(), "segment_*.mp4"))
	if err != nil || len(clips) != 1 {
		t.Fatalf("expected one retained clip, got %v (err=%v)", clips, err)
	}
}
