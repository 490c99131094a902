package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"videocut/internal/domain/timespec"
	"videocut/internal/pipeline"
)

func newPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "plan",
		Short:        "Show what would be cut without cutting anything",
		SilenceUsage: true,
		RunE:         runPlan,
	}
	cmd.Flags().StringP("input", "i", "", "Input video file (e.g. input.mp4)")
	cmd.Flags().StringP("ranges", "r", "", "Path to ranges.txt describing segments to keep")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("ranges")
	return cmd
}

func runPlan(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	ranges, _ := cmd.Flags().GetString("ranges")

	fileCfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cfg := pipeline.Config{
		Input:       input,
		Ranges:      ranges,
		FFmpegPath:  resolveTool(cmd, "ffmpeg", "VIDEOCUT_FFMPEG", fileCfg.Tools.FFmpeg),
		FFprobePath: resolveTool(cmd, "ffprobe", "VIDEOCUT_FFPROBE", fileCfg.Tools.FFprobe),
	}

	res, planErr := pipeline.Plan(cmd.Context(), cfg)
	for _, s := range res.Skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: segment %d covers no time (start=%s end=%s), skipped\n",
			s.Index, timespec.FormatTime(s.Start), timespec.FormatTime(s.End))
	}
	if planErr != nil {
		return planErr
	}

	rows := make([][]string, 0, len(res.Segments))
	var cutTotal time.Duration
	for i, seg := range res.Segments {
		cutTotal += seg.Duration()
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			timespec.FormatTime(seg.Start),
			timespec.FormatTime(seg.End),
			timespec.FormatTime(seg.Duration()),
		})
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(
		[]string{"#", "START", "END", "LENGTH"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	))
	fmt.Fprintf(out, "input duration %s, cutting %d segment(s), output length %s\n",
		timespec.FormatTime(res.Total), len(res.Segments), timespec.FormatTime(cutTotal))
	return nil
}
