// Package source resolves input references into downloaded, tagged audio
// files. Each source platform has an adapter sharing the same contract:
// classify the reference, expand it into items, skip what is already
// present, fetch and tag the rest, and record completions in the ledger.
package source

import (
	"context"

	"github.com/bue221/music-downloader/internal/engine"
	"github.com/bue221/music-downloader/pkg/spotify"
)

//go:generate mockgen -source=source.go -destination=mocks/source_mock.go -package=mocks

// Engine is the external fetch engine: probe metadata for a reference and
// turn a reference into a transcoded audio file on disk.
type Engine interface {
	Probe(ctx context.Context, ref string) (*engine.Info, error)
	ProbePlaylist(ctx context.Context, ref string) (*engine.PlaylistInfo, error)
	Fetch(ctx context.Context, ref, outputTemplate string) error
}

// Catalog resolves Spotify references into track metadata and paginated
// member lists.
type Catalog interface {
	Track(ctx context.Context, id string) (*spotify.Track, error)
	Playlist(ctx context.Context, id string) (*spotify.Playlist, error)
	PlaylistTracks(ctx context.Context, id string, offset int) (*spotify.TrackPage, error)
	Album(ctx context.Context, id string) (*spotify.Album, error)
	AlbumTracks(ctx context.Context, id string, offset int) (*spotify.AlbumTrackPage, error)
}

// TrackFetcher turns resolved Spotify track metadata into an audio file
// inside destDir and returns the written path.
type TrackFetcher interface {
	FetchTrack(ctx context.Context, track *spotify.Track, destDir string) (string, error)
}

// Descriptor is the per-item result of a download attempt. A descriptor
// with neither Skipped nor Err set is a completed download.
type Descriptor struct {
	ID         string // platform-native id
	Title      string
	Artist     string
	Path       string
	Collection string
	Skipped    bool   // already present, nothing fetched
	Err        string // non-empty when this item failed
}

// Failed reports whether the item errored. Err dominates Skipped when a
// malformed descriptor carries both.
func (d Descriptor) Failed() bool {
	return d.Err != ""
}

// Progress receives human-readable status lines at coarse points of a run.
// It carries no control-flow meaning; a nil Progress is valid.
type Progress func(msg string)

// notify invokes the callback when one is set.
func notify(p Progress, msg string) {
	if p != nil {
		p(msg)
	}
}

// Adapter is the per-platform download contract consumed by the batch
// runner. Download expands one reference into one or more descriptors.
type Adapter interface {
	Download(ctx context.Context, ref, collection string, progress Progress) ([]Descriptor, error)
}
