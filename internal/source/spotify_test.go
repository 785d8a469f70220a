package source_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bue221/music-downloader/internal/ledger"
	"github.com/bue221/music-downloader/internal/library"
	"github.com/bue221/music-downloader/internal/source"
	"github.com/bue221/music-downloader/internal/source/mocks"
	"github.com/bue221/music-downloader/pkg/spotify"
)

// newSpotifyAdapter wires an adapter with a mock catalog and an optional
// mock fetcher. A nil fetcher leaves the default zotify stand-in in place.
func newSpotifyAdapter(t *testing.T, root string, cat source.Catalog, fetcher source.TrackFetcher) (*source.Spotify, *ledger.Store) {
	t.Helper()

	led := ledger.Open(filepath.Join(root, "downloaded.json"), nil)
	opts := []source.SpotifyOption{source.WithCatalog(cat)}
	if fetcher != nil {
		opts = append(opts, source.WithTrackFetcher(fetcher))
	}

	adapter, err := source.NewSpotify("id", "secret", led, library.New(root), testLogger(), opts...)
	require.NoError(t, err)
	return adapter, led
}

func TestNewSpotifyMissingCredentials(t *testing.T) {
	root := t.TempDir()
	led := ledger.Open(filepath.Join(root, "downloaded.json"), nil)

	_, err := source.NewSpotify("", "", led, library.New(root), testLogger())
	assert.ErrorIs(t, err, source.ErrMissingCredentials)

	_, err = source.NewSpotify("id", "", led, library.New(root), testLogger())
	assert.ErrorIs(t, err, source.ErrMissingCredentials)
}

func TestSpotifyUnsupportedReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter, _ := newSpotifyAdapter(t, t.TempDir(), mocks.NewMockCatalog(ctrl), nil)

	_, err := adapter.Download(context.Background(), "https://open.spotify.com/artist/xyz", "", nil)
	assert.ErrorIs(t, err, source.ErrUnsupportedReference)
}

func TestSpotifyTrackNotImplementedSignal(t *testing.T) {
	ctrl := gomock.NewController(t)

	cat := mocks.NewMockCatalog(ctrl)
	cat.EXPECT().Track(gomock.Any(), "4uLU6hMCjMI75M1A2tKUQC").
		Return(&spotify.Track{ID: "4uLU6hMCjMI75M1A2tKUQC", Name: "Song", Artists: []spotify.Artist{{Name: "Artist"}}}, nil)

	adapter, led := newSpotifyAdapter(t, t.TempDir(), cat, nil)

	_, err := adapter.Download(context.Background(), "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC", "", nil)
	assert.ErrorIs(t, err, source.ErrFetcherNotImplemented, "capability gap must surface, never silent success")
	assert.Equal(t, 0, led.Len(), "nothing registered on failure")
}

func TestSpotifyTrackSkippedWhenLedgered(t *testing.T) {
	ctrl := gomock.NewController(t)

	// No catalog expectations: a ledgered track must not hit the API.
	adapter, led := newSpotifyAdapter(t, t.TempDir(), mocks.NewMockCatalog(ctrl), nil)
	require.NoError(t, led.Register("spotify:abc123", "Song", "Artist", "spotify", "/music/uncategorized/Song.mp3", ""))

	ds, err := adapter.Download(context.Background(), "spotify:track:abc123", "", nil)
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.True(t, ds[0].Skipped)
	assert.Equal(t, "/music/uncategorized/Song.mp3", ds[0].Path)

	// The ledger record fills in the display fields, not the bare id.
	assert.Equal(t, "Song", ds[0].Title)
	assert.Equal(t, "Artist", ds[0].Artist)
}

func TestSpotifyTrackFetchSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	track := &spotify.Track{ID: "abc123", Name: "Song", Artists: []spotify.Artist{{Name: "A"}, {Name: "B"}}}

	cat := mocks.NewMockCatalog(ctrl)
	cat.EXPECT().Track(gomock.Any(), "abc123").Return(track, nil)

	fetched := filepath.Join(root, library.UncategorizedDir, "Song.mp3")
	fetcher := mocks.NewMockTrackFetcher(ctrl)
	fetcher.EXPECT().FetchTrack(gomock.Any(), track, filepath.Join(root, library.UncategorizedDir)).
		Return(fetched, nil)

	adapter, led := newSpotifyAdapter(t, root, cat, fetcher)

	ds, err := adapter.Download(context.Background(), "https://open.spotify.com/track/abc123", "", nil)
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, fetched, ds[0].Path)
	assert.Equal(t, "A, B", ds[0].Artist)

	rec, ok := led.Get("spotify:abc123")
	require.True(t, ok, "registered under the prefixed identity")
	assert.Equal(t, "spotify", rec.Source)
	assert.Equal(t, fetched, rec.Path)
}

func TestSpotifyPlaylistContainsMemberErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	cat := mocks.NewMockCatalog(ctrl)
	cat.EXPECT().Playlist(gomock.Any(), "p1").Return(&spotify.Playlist{
		ID:   "p1",
		Name: "Mix",
		Tracks: spotify.TrackPage{
			Items: []spotify.PlaylistItem{
				{Track: &spotify.Track{ID: "t1", Name: "First"}},
				{Track: nil}, // removed entry, skipped entirely
			},
			Total: 2,
		},
	}, nil)
	cat.EXPECT().Track(gomock.Any(), "t1").
		Return(&spotify.Track{ID: "t1", Name: "First", Artists: []spotify.Artist{{Name: "A"}}}, nil)

	// Default zotify fetcher: every member fails with the capability gap.
	adapter, _ := newSpotifyAdapter(t, root, cat, nil)

	ds, err := adapter.Download(context.Background(), "https://open.spotify.com/playlist/p1", "", nil)
	require.NoError(t, err, "member failures are contained")
	require.Len(t, ds, 1)
	assert.Equal(t, "t1", ds[0].ID)
	assert.Contains(t, ds[0].Err, source.ErrFetcherNotImplemented.Error())
	assert.DirExists(t, filepath.Join(root, library.CollectionsDir, "Mix"))
}

func TestSpotifyPlaylistPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	trackA := &spotify.Track{ID: "t1", Name: "First", Artists: []spotify.Artist{{Name: "A"}}}
	trackB := &spotify.Track{ID: "t2", Name: "Second", Artists: []spotify.Artist{{Name: "B"}}}

	cat := mocks.NewMockCatalog(ctrl)
	cat.EXPECT().Playlist(gomock.Any(), "p1").Return(&spotify.Playlist{
		ID:   "p1",
		Name: "Mix",
		Tracks: spotify.TrackPage{
			Items: []spotify.PlaylistItem{{Track: trackA}},
			Next:  "next-page",
			Total: 2,
		},
	}, nil)
	cat.EXPECT().PlaylistTracks(gomock.Any(), "p1", 1).Return(&spotify.TrackPage{
		Items:  []spotify.PlaylistItem{{Track: trackB}},
		Offset: 1,
		Total:  2,
	}, nil)
	cat.EXPECT().Track(gomock.Any(), "t1").Return(trackA, nil)
	cat.EXPECT().Track(gomock.Any(), "t2").Return(trackB, nil)

	dir := filepath.Join(root, library.CollectionsDir, "Mix")
	fetcher := mocks.NewMockTrackFetcher(ctrl)
	fetcher.EXPECT().FetchTrack(gomock.Any(), trackA, dir).Return(filepath.Join(dir, "First.mp3"), nil)
	fetcher.EXPECT().FetchTrack(gomock.Any(), trackB, dir).Return(filepath.Join(dir, "Second.mp3"), nil)

	adapter, led := newSpotifyAdapter(t, root, cat, fetcher)

	ds, err := adapter.Download(context.Background(), "https://open.spotify.com/playlist/p1", "", nil)
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "Mix", ds[0].Collection)
	assert.True(t, led.IsDownloaded("spotify:t1"))
	assert.True(t, led.IsDownloaded("spotify:t2"))
}

func TestSpotifyAlbumLabelUnbound(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	cat := mocks.NewMockCatalog(ctrl)
	cat.EXPECT().Album(gomock.Any(), "alb1").Return(&spotify.Album{
		ID:          "alb1",
		Name:        "Discovery",
		Artists:     []spotify.Artist{{Name: "Daft Punk"}},
		TotalTracks: 2,
		Tracks: spotify.AlbumTrackPage{
			Items: []spotify.Track{{ID: "t1", Name: "One More Time"}, {ID: "t2", Name: "Aerodynamic"}},
			Total: 2,
		},
	}, nil)

	// No fetcher expectations: members fail before any fetch is attempted.
	fetcher := mocks.NewMockTrackFetcher(ctrl)
	adapter, led := newSpotifyAdapter(t, root, cat, fetcher)

	ds, err := adapter.Download(context.Background(), "https://open.spotify.com/album/alb1", "", nil)
	require.NoError(t, err)
	require.Len(t, ds, 2)
	for _, d := range ds {
		assert.Equal(t, source.ErrCollectionLabelUnbound.Error(), d.Err)
	}
	assert.Equal(t, 0, led.Len())

	// The album directory is still created from the derived label.
	assert.DirExists(t, filepath.Join(root, library.CollectionsDir, "Daft Punk - Discovery"))
}
