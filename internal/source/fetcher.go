package source

import (
	"context"
	"fmt"

	"github.com/bue221/music-downloader/pkg/spotify"
)

// ZotifyFetcher is the zotify-backed track fetcher. The integration is
// unfinished: FetchTrack unconditionally reports the capability gap so the
// missing feature is visible instead of silently succeeding.
type ZotifyFetcher struct{}

// FetchTrack always returns ErrFetcherNotImplemented.
func (ZotifyFetcher) FetchTrack(_ context.Context, track *spotify.Track, _ string) (string, error) {
	return "", fmt.Errorf("zotify fetch %q: %w", track.Name, ErrFetcherNotImplemented)
}
