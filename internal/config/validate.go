package config

import "errors"

// Validate rejects configurations that would make every job fail.
func (c Config) Validate() error {
	if c.Tools.FFmpeg == "" {
		return errors.New("tools.ffmpeg must not be empty")
	}
	if c.Tools.FFprobe == "" {
		return errors.New("tools.ffprobe must not be empty")
	}
	if c.Output.DefaultName == "" {
		return errors.New("output.default_name must not be empty")
	}
	return nil
}
