// musicdl downloads music from YouTube and Spotify into a tagged,
// deduplicated local library.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bue221/music-downloader/internal/config"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "musicdl",
	Short: "Music downloader for YouTube and Spotify",
	Long: `musicdl - personal music acquisition

Resolves YouTube and Spotify references, fetches audio through yt-dlp,
transcodes to mp3, tags the files, and keeps a ledger so repeated runs
never fetch the same track twice.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("musicdl {{.Version}}\n")
}

// loadConfig resolves the configuration: the --config flag, then the
// standard search paths, then built-in defaults when no file exists.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	path, err := config.Discover()
	if err != nil {
		// No config file anywhere is fine; defaults carry a working setup.
		return config.Default(), nil
	}
	return config.Load(path)
}

// parseLogLevel maps the configured level onto slog.
func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger builds the process logger writing to stderr, keeping stdout
// for command output.
func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
