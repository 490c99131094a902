package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Main builds the command tree and runs it. Any failure prints one
// diagnostic line to stderr and exits 2.
func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := newRootCommand()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "videocut",
		Short:         "Cut and glue parts of a video quickly using ffmpeg",
		Long: "videocut keeps the listed time ranges from a video file and joins them " +
			"into one output. Cuts are lossless stream copies by default; --accurate " +
			"re-encodes video for frame-exact boundaries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCut(cmd)
		},
	}

	root.Flags().StringP("input", "i", "", "Input video file (e.g. input.mp4)")
	root.Flags().StringP("ranges", "r", "", "Path to ranges.txt describing segments to keep")
	root.Flags().StringP("output", "o", "", `Output video path (default "output.mp4")`)
	root.Flags().Bool("accurate", false, "Frame-accurate cuts (re-encode video; slower)")
	root.Flags().Bool("force", false, "Overwrite output if it exists")
	root.Flags().Bool("keep-temp", false, "Keep temporary segment files")
	_ = root.MarkFlagRequired("input")
	_ = root.MarkFlagRequired("ranges")

	root.PersistentFlags().String("config", "", "Path to a videocut.toml config file")
	root.PersistentFlags().String("ffmpeg", "", "Path to the ffmpeg binary")
	root.PersistentFlags().String("ffprobe", "", "Path to the ffprobe binary")

	root.AddCommand(newPlanCommand())
	return root
}
