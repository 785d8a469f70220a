package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"github.com/bue221/music-downloader/internal/catalog"
	"github.com/bue221/music-downloader/internal/ledger"
	"github.com/bue221/music-downloader/internal/library"
	"github.com/bue221/music-downloader/internal/naming"
	"github.com/bue221/music-downloader/pkg/spotify"
)

// refPattern matches the resource kind and id in Spotify URLs and URIs.
var refPattern = regexp.MustCompile(`(track|playlist|album)[/:]([a-zA-Z0-9]+)`)

// Spotify resolves references through the Spotify catalog and delegates
// byte-fetching to a pluggable TrackFetcher. Presence is checked against
// the ledger under the prefixed spotify identity; fetched files carry no
// embedded platform id, so the library tree cannot answer for them.
type Spotify struct {
	catalog Catalog
	fetcher TrackFetcher
	cache   *catalog.Cache
	ledger  *ledger.Store
	lib     *library.Library
	log     *slog.Logger
}

// SpotifyOption configures the Spotify adapter.
type SpotifyOption func(*Spotify)

// WithCatalog replaces the default API-backed catalog.
func WithCatalog(c Catalog) SpotifyOption {
	return func(s *Spotify) {
		s.catalog = c
	}
}

// WithTrackFetcher replaces the default zotify fetcher.
func WithTrackFetcher(f TrackFetcher) SpotifyOption {
	return func(s *Spotify) {
		s.fetcher = f
	}
}

// WithCatalogCache sets the response cache for the default catalog.
func WithCatalogCache(cache *catalog.Cache) SpotifyOption {
	return func(s *Spotify) {
		s.cache = cache
	}
}

// NewSpotify creates the Spotify source adapter. Construction fails fast
// when credentials are absent, before any network activity.
func NewSpotify(clientID, clientSecret string, led *ledger.Store, lib *library.Library, log *slog.Logger, opts ...SpotifyOption) (*Spotify, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("%w: set spotify client_id and client_secret", ErrMissingCredentials)
	}

	s := &Spotify{ledger: led, lib: lib, log: log}
	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		clientOpts := []spotify.Option{}
		if log != nil {
			clientOpts = append(clientOpts, spotify.WithLogger(log))
		}
		client := spotify.New(clientID, clientSecret, clientOpts...)
		s.catalog = catalog.NewService(client, s.cache, log)
	}
	if s.fetcher == nil {
		s.fetcher = ZotifyFetcher{}
	}
	return s, nil
}

// Download resolves a Spotify reference into one or more descriptors.
func (s *Spotify) Download(ctx context.Context, ref, collection string, progress Progress) ([]Descriptor, error) {
	m := refPattern.FindStringSubmatch(ref)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedReference, ref)
	}
	kind, id := m[1], m[2]

	switch kind {
	case "track":
		d, err := s.downloadTrack(ctx, id, "", collection, progress)
		if err != nil {
			return nil, err
		}
		return []Descriptor{d}, nil
	case "playlist":
		return s.downloadPlaylist(ctx, id, collection, progress)
	default:
		return s.downloadAlbum(ctx, id, collection, progress)
	}
}

// downloadTrack fetches one track. An empty destDir places the file in
// the uncategorized bucket.
func (s *Spotify) downloadTrack(ctx context.Context, id, destDir, collection string, progress Progress) (Descriptor, error) {
	identity := naming.PlatformSpotify.Identity(id)

	if rec, ok := s.ledger.Get(identity); ok {
		notify(progress, "Already downloaded: "+rec.Title)
		return Descriptor{
			ID:         id,
			Title:      rec.Title,
			Artist:     rec.Artist,
			Path:       rec.Path,
			Collection: collection,
			Skipped:    true,
		}, nil
	}

	track, err := s.catalog.Track(ctx, id)
	if err != nil {
		return Descriptor{}, fmt.Errorf("resolve track %s: %w", id, err)
	}
	artists := track.ArtistNames()

	notify(progress, fmt.Sprintf("Fetching: %s - %s", artists, track.Name))

	if destDir == "" {
		destDir = s.lib.UncategorizedPath()
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return Descriptor{}, fmt.Errorf("create output dir: %w", err)
	}

	path, err := s.fetcher.FetchTrack(context.WithoutCancel(ctx), track, destDir)
	if err != nil {
		return Descriptor{}, fmt.Errorf("fetch track %s: %w", id, err)
	}

	if err := s.ledger.Register(identity, track.Name, artists, string(naming.PlatformSpotify), path, collection); err != nil {
		return Descriptor{}, err
	}

	notify(progress, "Completed: "+track.Name)
	return Descriptor{
		ID:         id,
		Title:      track.Name,
		Artist:     artists,
		Path:       path,
		Collection: collection,
	}, nil
}

// downloadPlaylist expands a playlist through the catalog's pagination and
// processes members sequentially. Removed entries (null track) are skipped.
func (s *Spotify) downloadPlaylist(ctx context.Context, id, collection string, progress Progress) ([]Descriptor, error) {
	pl, err := s.catalog.Playlist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve playlist %s: %w", id, err)
	}

	name := collection
	if name == "" {
		name = naming.Sanitize(pl.Name)
	}
	dir := s.lib.CollectionDir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create collection dir: %w", err)
	}

	notify(progress, fmt.Sprintf("Playlist: %s (%d tracks)", name, pl.Tracks.Total))

	var results []Descriptor
	page := &pl.Tracks
	for {
		for _, item := range page.Items {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			if item.Track == nil {
				continue
			}

			d, err := s.downloadTrack(ctx, item.Track.ID, dir, name, progress)
			if err != nil {
				if errors.Is(err, ledger.ErrPersist) {
					return results, err
				}
				notify(progress, "Error: "+err.Error())
				results = append(results, Descriptor{
					ID:         item.Track.ID,
					Title:      item.Track.Name,
					Collection: name,
					Err:        err.Error(),
				})
				continue
			}
			results = append(results, d)
		}

		if page.Next == "" {
			break
		}
		offset := page.Offset + len(page.Items)
		page, err = s.catalog.PlaylistTracks(ctx, id, offset)
		if err != nil {
			return results, fmt.Errorf("resolve playlist %s page at %d: %w", id, offset, err)
		}
	}
	return results, nil
}

// downloadAlbum resolves an album and walks its members. The per-member
// collection label has no bound value in the current product, so every
// member reports ErrCollectionLabelUnbound instead of fetching; the error
// is surfaced per member rather than repaired by guessing intent.
func (s *Spotify) downloadAlbum(ctx context.Context, id, collection string, progress Progress) ([]Descriptor, error) {
	album, err := s.catalog.Album(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve album %s: %w", id, err)
	}

	label := collection
	if label == "" {
		label = album.ArtistName() + " - " + naming.Sanitize(album.Name)
	}
	dir := s.lib.CollectionDir(label)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create collection dir: %w", err)
	}

	notify(progress, fmt.Sprintf("Album: %s (%d tracks)", label, album.TotalTracks))

	var results []Descriptor
	page := &album.Tracks
	for {
		for _, track := range page.Items {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			notify(progress, "Error: "+ErrCollectionLabelUnbound.Error())
			results = append(results, Descriptor{
				ID:    track.ID,
				Title: track.Name,
				Err:   ErrCollectionLabelUnbound.Error(),
			})
		}

		if page.Next == "" {
			break
		}
		offset := page.Offset + len(page.Items)
		page, err = s.catalog.AlbumTracks(ctx, id, offset)
		if err != nil {
			return results, fmt.Errorf("resolve album %s page at %d: %w", id, offset, err)
		}
	}
	return results, nil
}
