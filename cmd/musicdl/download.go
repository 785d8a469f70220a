package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bue221/music-downloader/internal/catalog"
	"github.com/bue221/music-downloader/internal/config"
	"github.com/bue221/music-downloader/internal/engine"
	"github.com/bue221/music-downloader/internal/ledger"
	"github.com/bue221/music-downloader/internal/library"
	"github.com/bue221/music-downloader/internal/naming"
	"github.com/bue221/music-downloader/internal/source"
)

var (
	downloadFile     string
	downloadName     string
	downloadPlatform string
)

var downloadCmd = &cobra.Command{
	Use:   "download [url ...]",
	Short: "Download one or more URLs (videos, playlists, tracks, albums)",
	Long: `Download music from YouTube or Spotify references.

References come from the command line or from a file (-f) with one URL
per line; blank lines are ignored. Already-downloaded tracks are skipped.
One failing reference never aborts the rest of the batch.`,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadFile, "file", "f", "", "File with one URL per line")
	downloadCmd.Flags().StringVarP(&downloadName, "name", "n", "", "Collection name override")
	downloadCmd.Flags().StringVarP(&downloadPlatform, "platform", "p", "", "Force platform: youtube or spotify")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	refs, err := gatherReferences(args, downloadFile)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return fmt.Errorf("nothing to download: pass URLs or -f <file>")
	}

	platform, err := parsePlatform(downloadPlatform)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := engine.Ensure(ctx); err != nil {
		return err
	}

	led := ledger.Open(cfg.Ledger.Path, log)
	lib := library.New(cfg.Library.Root)
	eng := engine.New(engine.Config{
		AudioFormat:  cfg.Engine.AudioFormat,
		AudioQuality: cfg.Engine.AudioQuality,
	}, log)

	youtube := source.NewYouTube(eng, led, lib, log)

	var spotify source.Adapter
	if cfg.Spotify.Configured() {
		var opts []source.SpotifyOption
		if cache := openCatalogCache(cfg, log); cache != nil {
			opts = append(opts, source.WithCatalogCache(cache))
		}
		sp, err := source.NewSpotify(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, led, lib, log, opts...)
		if err != nil {
			return err
		}
		spotify = sp
	}

	runner := source.NewRunner(youtube, spotify, log)

	// Progress lines print from one goroutine so they never interleave.
	msgs := make(chan string, 16)
	var g errgroup.Group
	g.Go(func() error {
		for msg := range msgs {
			fmt.Println(msg)
		}
		return nil
	})

	summary, runErr := runner.Run(ctx, refs, downloadName, platform, func(msg string) {
		msgs <- msg
	})
	close(msgs)
	_ = g.Wait()

	if jsonOutput {
		if err := printJSON(summary); err != nil {
			return err
		}
	} else {
		printSummary(summary)
	}

	if runErr != nil {
		return runErr
	}
	if summary.Errors > 0 {
		return fmt.Errorf("%d of %d items failed", summary.Errors, len(summary.Results))
	}
	return nil
}

// gatherReferences merges positional URLs with the optional reference
// file: one reference per line, blank lines ignored.
func gatherReferences(args []string, file string) ([]string, error) {
	refs := append([]string(nil), args...)

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read reference file: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			refs = append(refs, line)
		}
	}
	return refs, nil
}

// parsePlatform validates the -p flag. Empty means per-URL detection.
func parsePlatform(s string) (naming.Platform, error) {
	switch s {
	case "":
		return "", nil
	case "youtube":
		return naming.PlatformYouTube, nil
	case "spotify":
		return naming.PlatformSpotify, nil
	default:
		return "", fmt.Errorf("unknown platform %q: use youtube or spotify", s)
	}
}

// openCatalogCache opens the catalog response cache, degrading to no
// cache when the database cannot be opened.
func openCatalogCache(cfg *config.Config, log *slog.Logger) *catalog.Cache {
	if cfg.Cache.Path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Cache.Path), 0o755); err != nil {
		log.Warn("catalog cache disabled", "error", err)
		return nil
	}
	db, err := catalog.OpenDB(cfg.Cache.Path)
	if err != nil {
		log.Warn("catalog cache disabled", "error", err)
		return nil
	}
	return catalog.NewCache(db)
}

func printSummary(s *source.Summary) {
	fmt.Println()
	for _, d := range s.Results {
		switch {
		case d.Failed():
			fmt.Printf("  error      %s: %s\n", displayName(d), d.Err)
		case d.Skipped:
			fmt.Printf("  skipped    %s\n", displayName(d))
		default:
			fmt.Printf("  downloaded %s\n", displayName(d))
		}
	}
	fmt.Printf("\nDownloaded %d, skipped %d, errors %d\n", s.Downloaded, s.Skipped, s.Errors)
}

func displayName(d source.Descriptor) string {
	switch {
	case d.Artist != "" && d.Title != "":
		return d.Artist + " - " + d.Title
	case d.Title != "":
		return d.Title
	default:
		return d.ID
	}
}
