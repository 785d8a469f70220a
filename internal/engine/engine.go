// Package engine wraps yt-dlp as the external fetch engine: it probes
// metadata for a reference and turns a reference into a transcoded audio
// file on disk. Everything past the process boundary is a black box.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lrstanley/go-ytdlp"
)

// Config controls the transcode output.
type Config struct {
	AudioFormat  string // e.g. "mp3"
	AudioQuality string // e.g. "192K"
}

// Client invokes yt-dlp. One invocation is in flight at a time per batch;
// the client itself keeps no state between calls.
type Client struct {
	cfg Config
	log *slog.Logger
}

// New creates a fetch engine client.
func New(cfg Config, log *slog.Logger) *Client {
	if cfg.AudioFormat == "" {
		cfg.AudioFormat = "mp3"
	}
	if cfg.AudioQuality == "" {
		cfg.AudioQuality = "192K"
	}
	return &Client{cfg: cfg, log: log}
}

// Ensure makes sure a yt-dlp binary is available, downloading one when the
// host has none.
func Ensure(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("install yt-dlp: %w", err)
	}
	return nil
}

// Probe resolves metadata for a single reference without downloading.
func (c *Client) Probe(ctx context.Context, ref string) (*Info, error) {
	cmd := ytdlp.New().
		Quiet().
		NoWarnings().
		SkipDownload().
		NoPlaylist().
		DumpSingleJSON()

	res, err := cmd.Run(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", ref, err)
	}

	info, err := parseInfo([]byte(res.Stdout))
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", ref, err)
	}
	if c.log != nil {
		c.log.Debug("probed reference", "ref", ref, "id", info.ID, "title", info.Title)
	}
	return info, nil
}

// ProbePlaylist resolves playlist metadata and its flat member list.
func (c *Client) ProbePlaylist(ctx context.Context, ref string) (*PlaylistInfo, error) {
	cmd := ytdlp.New().
		Quiet().
		NoWarnings().
		SkipDownload().
		FlatPlaylist().
		DumpSingleJSON()

	res, err := cmd.Run(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("probe playlist %s: %w", ref, err)
	}

	info, err := parsePlaylist([]byte(res.Stdout))
	if err != nil {
		return nil, fmt.Errorf("probe playlist %s: %w", ref, err)
	}
	if c.log != nil {
		c.log.Debug("probed playlist", "ref", ref, "title", info.Title, "entries", len(info.Entries))
	}
	return info, nil
}

// Fetch downloads a reference and transcodes it to the configured audio
// format at the given output template.
func (c *Client) Fetch(ctx context.Context, ref, outputTemplate string) error {
	cmd := ytdlp.New().
		Quiet().
		NoWarnings().
		NoPlaylist().
		Format("bestaudio/best").
		ExtractAudio().
		AudioFormat(c.cfg.AudioFormat).
		AudioQuality(c.cfg.AudioQuality).
		Output(outputTemplate)

	if c.log != nil {
		c.log.Debug("fetching", "ref", ref, "template", outputTemplate)
	}
	if _, err := cmd.Run(ctx, ref); err != nil {
		return fmt.Errorf("fetch %s: %w", ref, err)
	}
	return nil
}
