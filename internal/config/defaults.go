package config

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Tools: Tools{
			FFmpeg:  "ffmpeg",
			FFprobe: "ffprobe",
		},
		Output: Output{
			DefaultName: "output.mp4",
		},
	}
}
