package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bue221/music-downloader/internal/ledger"
	"github.com/bue221/music-downloader/internal/library"
	"github.com/bue221/music-downloader/internal/naming"
	"github.com/bue221/music-downloader/internal/tags"
)

// YouTube downloads singles and playlists through the fetch engine.
// Presence is checked against the library tree, not the ledger, so manual
// file moves and ledger wipes do not cause re-downloads.
type YouTube struct {
	engine Engine
	ledger *ledger.Store
	lib    *library.Library
	log    *slog.Logger
}

// NewYouTube creates the YouTube source adapter.
func NewYouTube(eng Engine, led *ledger.Store, lib *library.Library, log *slog.Logger) *YouTube {
	return &YouTube{engine: eng, ledger: led, lib: lib, log: log}
}

// Download resolves a reference into one or more downloaded tracks. A
// playlist URL expands into one descriptor per member; anything else is
// treated as a single item.
func (y *YouTube) Download(ctx context.Context, ref, collection string, progress Progress) ([]Descriptor, error) {
	if naming.IsPlaylistURL(ref) {
		return y.downloadPlaylist(ctx, ref, collection, progress)
	}
	d, err := y.downloadSingle(ctx, ref, "", collection, progress)
	if err != nil {
		return nil, err
	}
	return []Descriptor{d}, nil
}

// downloadSingle fetches one item. An empty destDir places the file
// directly in the library root.
func (y *YouTube) downloadSingle(ctx context.Context, ref, destDir, collection string, progress Progress) (Descriptor, error) {
	info, err := y.engine.Probe(ctx, ref)
	if err != nil {
		return Descriptor{}, fmt.Errorf("resolve %s: %w", ref, err)
	}

	if track, ok := y.lib.FindByNativeID(info.ID); ok {
		notify(progress, "Already downloaded: "+info.Title)
		return Descriptor{
			ID:         info.ID,
			Title:      info.Title,
			Artist:     info.Artist(),
			Path:       track.Path,
			Collection: collection,
			Skipped:    true,
		}, nil
	}

	if destDir == "" {
		destDir = y.lib.Root()
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return Descriptor{}, fmt.Errorf("create output dir: %w", err)
	}

	safeTitle := naming.Sanitize(info.Title)
	template := filepath.Join(destDir, safeTitle+".%(ext)s")

	notify(progress, "Downloading: "+info.Title)

	// The fetch runs detached from cancellation: an in-flight fetch always
	// completes or fails before cancellation takes effect between items.
	if err := y.engine.Fetch(context.WithoutCancel(ctx), ref, template); err != nil {
		return Descriptor{}, fmt.Errorf("fetch %s: %w", ref, err)
	}

	path := filepath.Join(destDir, safeTitle+".mp3")
	if err := tags.Write(path, tags.Meta{Title: info.Title, Artist: info.Artist(), VideoID: info.ID}); err != nil {
		return Descriptor{}, fmt.Errorf("tag %s: %w", path, err)
	}

	identity := naming.PlatformYouTube.Identity(info.ID)
	if err := y.ledger.Register(identity, info.Title, info.Artist(), string(naming.PlatformYouTube), path, collection); err != nil {
		return Descriptor{}, err
	}

	notify(progress, "Completed: "+info.Title)
	return Descriptor{
		ID:         info.ID,
		Title:      info.Title,
		Artist:     info.Artist(),
		Path:       path,
		Collection: collection,
	}, nil
}

// downloadPlaylist expands a playlist into its members and processes them
// sequentially in catalog order. Per-member failures become error
// descriptors; ledger persist failures and cancellation abort the run.
func (y *YouTube) downloadPlaylist(ctx context.Context, ref, collection string, progress Progress) ([]Descriptor, error) {
	pl, err := y.engine.ProbePlaylist(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("resolve playlist %s: %w", ref, err)
	}

	name := collection
	if name == "" {
		name = naming.Sanitize(pl.Title)
	}
	dir := y.lib.CollectionDir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create collection dir: %w", err)
	}

	notify(progress, fmt.Sprintf("Playlist: %s (%d tracks)", name, len(pl.Entries)))

	var results []Descriptor
	for _, entry := range pl.Entries {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		memberRef, ok := entry.Reference()
		if !ok {
			continue
		}

		d, err := y.downloadSingle(ctx, memberRef, dir, name, progress)
		if err != nil {
			if errors.Is(err, ledger.ErrPersist) {
				return results, err
			}
			notify(progress, "Error: "+err.Error())
			title := entry.Title
			if title == "" {
				title = "Unknown"
			}
			results = append(results, Descriptor{
				ID:         entry.ID,
				Title:      title,
				Collection: name,
				Err:        err.Error(),
			})
			continue
		}
		results = append(results, d)
	}
	return results, nil
}
