package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"videocut/internal/domain/timespec"
	"videocut/internal/types"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

func (a *Adapter) ProbeDuration(ctx context.Context, input string) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		input,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return time.Duration(sec * float64(time.Second)), nil
}

func (a *Adapter) Cut(ctx context.Context, input string, seg types.Segment, out string, accurate bool) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg, cutArgs(input, seg, out, accurate)...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg cut: %w\n%s", err, string(b))
	}
	return nil
}

// cutArgs builds the extraction argument vector. Both modes map only video
// and audio streams so every clip has a concat-compatible track layout.
func cutArgs(input string, seg types.Segment, out string, accurate bool) []string {
	start := timespec.FormatTime(seg.Start)
	dur := timespec.FormatTime(seg.Duration())
	if !accurate {
		// -ss before -i seeks on keyframes and stream-copies: fast, but cut
		// boundaries land on the nearest preceding keyframe.
		return []string{
			"-hide_banner",
			"-loglevel", "error",
			"-ss", start,
			"-i", input,
			"-t", dur,
			"-map", "0:v?",
			"-map", "0:a?",
			"-c:v", "copy",
			"-c:a", "copy",
			"-avoid_negative_ts", "make_zero",
			out,
		}
	}
	// -ss after -i decodes up to the cut point and re-encodes video:
	// frame-accurate at the cost of speed and a small quality loss.
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", input,
		"-ss", start,
		"-t", dur,
		"-map", "0:v?",
		"-map", "0:a?",
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-crf", "18",
		"-c:a", "copy",
		out,
	}
}

func (a *Adapter) Concat(ctx context.Context, clips []string, out string) error {
	if len(clips) == 0 {
		return errors.New("concat: no clips")
	}
	manifest, err := concatManifest(clips)
	if err != nil {
		return err
	}

	// The manifest lives next to the clips and is removed regardless of how
	// the invocation ends.
	listPath := filepath.Join(filepath.Dir(clips[0]), "concat.txt")
	if err := os.WriteFile(listPath, []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("write concat manifest: %w", err)
	}
	defer os.Remove(listPath)

	cmd := exec.CommandContext(ctx, a.ffmpeg, concatArgs(listPath, out)...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg concat: %w\n%s", err, string(b))
	}
	return nil
}

// concatManifest renders the concat demuxer list: one absolute clip path per
// line, single quotes escaped the way the demuxer expects.
func concatManifest(clips []string) (string, error) {
	var b strings.Builder
	for _, clip := range clips {
		abs, err := filepath.Abs(clip)
		if err != nil {
			return "", fmt.Errorf("resolve clip path %q: %w", clip, err)
		}
		b.WriteString("file '")
		b.WriteString(strings.ReplaceAll(abs, "'", `'\''`))
		b.WriteString("'\n")
	}
	return b.String(), nil
}

func concatArgs(listPath, out string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		"-movflags", "+faststart",
		out,
	}
}
