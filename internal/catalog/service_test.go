package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bue221/music-downloader/pkg/spotify"
)

// newTestService wires a Service against mock Spotify servers. The returned
// counter tracks API hits so tests can assert cache behavior.
func newTestService(t *testing.T, handlers map[string]http.HandlerFunc) (*Service, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":3600}`))
	}))
	t.Cleanup(tokenSrv.Close)

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.URL.Path]; ok {
			calls.Add(1)
			handler(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(apiSrv.Close)

	client := spotify.New("id", "secret",
		spotify.WithBaseURL(apiSrv.URL),
		spotify.WithTokenURL(tokenSrv.URL),
	)
	return NewService(client, NewCache(setupTestDB(t)), nil), &calls
}

func respondJSON(t *testing.T, v any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(v))
	}
}

func TestServiceTrack_CachesResponse(t *testing.T) {
	svc, calls := newTestService(t, map[string]http.HandlerFunc{
		"/tracks/t1": respondJSON(t, spotify.Track{ID: "t1", Name: "Song", Artists: []spotify.Artist{{Name: "Artist"}}}),
	})
	ctx := context.Background()

	track, err := svc.Track(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Song", track.Name)
	assert.Equal(t, int32(1), calls.Load())

	// Second fetch is served from the cache.
	track, err = svc.Track(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Song", track.Name)
	assert.Equal(t, int32(1), calls.Load())
}

func TestServiceTrack_NotFound(t *testing.T) {
	svc, _ := newTestService(t, map[string]http.HandlerFunc{})

	_, err := svc.Track(context.Background(), "missing")
	assert.ErrorIs(t, err, spotify.ErrNotFound)
}

func TestServiceTrack_CorruptCacheEntryIsIgnored(t *testing.T) {
	svc, calls := newTestService(t, map[string]http.HandlerFunc{
		"/tracks/t1": respondJSON(t, spotify.Track{ID: "t1", Name: "Song"}),
	})
	ctx := context.Background()

	require.NoError(t, svc.cache.Set(ctx, keyPrefixTrack+"t1", []byte("{not json"), trackTTL))

	track, err := svc.Track(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Song", track.Name)
	assert.Equal(t, int32(1), calls.Load())
}

func TestServicePlaylist_CachesResponse(t *testing.T) {
	svc, calls := newTestService(t, map[string]http.HandlerFunc{
		"/playlists/p1": respondJSON(t, spotify.Playlist{
			ID:   "p1",
			Name: "Mix",
			Tracks: spotify.TrackPage{
				Items: []spotify.PlaylistItem{{Track: &spotify.Track{ID: "t1", Name: "First"}}},
				Total: 1,
			},
		}),
	})
	ctx := context.Background()

	playlist, err := svc.Playlist(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Mix", playlist.Name)

	_, err = svc.Playlist(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestServicePlaylistTracks_CacheKeyIncludesOffset(t *testing.T) {
	svc, calls := newTestService(t, map[string]http.HandlerFunc{
		"/playlists/p1/tracks": func(w http.ResponseWriter, r *http.Request) {
			page := spotify.TrackPage{Total: 2}
			if r.URL.Query().Get("offset") == "0" {
				page.Items = []spotify.PlaylistItem{{Track: &spotify.Track{ID: "t1"}}}
				page.Next = "more"
			} else {
				page.Items = []spotify.PlaylistItem{{Track: &spotify.Track{ID: "t2"}}}
				page.Offset = 1
			}
			require.NoError(t, json.NewEncoder(w).Encode(page))
		},
	})
	ctx := context.Background()

	first, err := svc.PlaylistTracks(ctx, "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, "t1", first.Items[0].Track.ID)

	second, err := svc.PlaylistTracks(ctx, "p1", 1)
	require.NoError(t, err)
	assert.Equal(t, "t2", second.Items[0].Track.ID)
	assert.Equal(t, int32(2), calls.Load(), "distinct offsets are distinct cache keys")

	_, err = svc.PlaylistTracks(ctx, "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestServiceAlbum_CachesResponse(t *testing.T) {
	svc, calls := newTestService(t, map[string]http.HandlerFunc{
		"/albums/a1": respondJSON(t, spotify.Album{
			ID:      "a1",
			Name:    "Discovery",
			Artists: []spotify.Artist{{Name: "Daft Punk"}},
		}),
	})
	ctx := context.Background()

	album, err := svc.Album(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Daft Punk", album.ArtistName())

	_, err = svc.Album(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestServiceAlbumTracks(t *testing.T) {
	svc, _ := newTestService(t, map[string]http.HandlerFunc{
		"/albums/a1/tracks": respondJSON(t, spotify.AlbumTrackPage{
			Items: []spotify.Track{{ID: "t1", Name: "One More Time"}},
			Total: 1,
		}),
	})

	page, err := svc.AlbumTracks(context.Background(), "a1", 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "One More Time", page.Items[0].Name)
}

func TestServiceWithoutCache(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(spotify.Track{ID: "t1", Name: "Song"}))
	}))
	defer apiSrv.Close()

	client := spotify.New("id", "secret",
		spotify.WithBaseURL(apiSrv.URL),
		spotify.WithTokenURL(tokenSrv.URL),
	)
	svc := NewService(client, nil, nil)

	track, err := svc.Track(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Song", track.Name)
}
