package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"videocut/internal/config"
	"videocut/internal/pipeline"
)

func runCut(cmd *cobra.Command) error {
	input, _ := cmd.Flags().GetString("input")
	ranges, _ := cmd.Flags().GetString("ranges")
	output, _ := cmd.Flags().GetString("output")
	accurate, _ := cmd.Flags().GetBool("accurate")
	force, _ := cmd.Flags().GetBool("force")
	keepTemp, _ := cmd.Flags().GetBool("keep-temp")

	fileCfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if output == "" {
		output = fileCfg.Output.DefaultName
	}

	cfg := pipeline.Config{
		Input:       input,
		Ranges:      ranges,
		Output:      output,
		Accurate:    accurate,
		Force:       force || fileCfg.Output.Overwrite,
		KeepTemp:    keepTemp || fileCfg.Workspace.KeepTemp,
		WorkRoot:    fileCfg.Workspace.Root,
		FFmpegPath:  resolveTool(cmd, "ffmpeg", "VIDEOCUT_FFMPEG", fileCfg.Tools.FFmpeg),
		FFprobePath: resolveTool(cmd, "ffprobe", "VIDEOCUT_FFPROBE", fileCfg.Tools.FFprobe),
		Logf: func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
		},
	}

	if err := pipeline.Run(cmd.Context(), cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Done. Wrote: %s\n", output)
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("VIDEOCUT_CONFIG")
	}
	return config.Load(path)
}

// resolveTool picks a binary path: flag beats environment beats config file.
func resolveTool(cmd *cobra.Command, flag, envKey, fromFile string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fromFile
}
