package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Only mp3 output is supported: the tag codec writes ID3 and the library
// reconciler scans .mp3 files.
var validAudioFormats = map[string]bool{
	"mp3": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Library.Root == "" {
		errs = append(errs, "library.root: required")
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if !validAudioFormats[c.Engine.AudioFormat] {
		errs = append(errs, fmt.Sprintf("engine.audio_format: only mp3 is supported; got %q", c.Engine.AudioFormat))
	}

	// Credentials come as a pair or not at all.
	if (c.Spotify.ClientID == "") != (c.Spotify.ClientSecret == "") {
		errs = append(errs, "spotify: client_id and client_secret must be set together")
	}

	return errs
}
