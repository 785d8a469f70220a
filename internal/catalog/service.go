package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/bue221/music-downloader/pkg/spotify"
)

const (
	// Cache TTLs. Track and album metadata is effectively immutable;
	// playlists change under their owners' hands.
	trackTTL    = 7 * 24 * time.Hour
	albumTTL    = 24 * time.Hour
	playlistTTL = time.Hour
)

// Cache key prefixes
const (
	keyPrefixTrack          = "spotify:track:"
	keyPrefixPlaylist       = "spotify:playlist:"
	keyPrefixPlaylistTracks = "spotify:playlist-tracks:"
	keyPrefixAlbum          = "spotify:album:"
	keyPrefixAlbumTracks    = "spotify:album-tracks:"
)

// Service provides cached access to the Spotify catalog.
type Service struct {
	client *spotify.Client
	cache  *Cache
	log    *slog.Logger
}

// NewService creates a cached catalog service.
func NewService(client *spotify.Client, cache *Cache, log *slog.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		log:    log,
	}
}

// Track fetches track metadata by id (cached).
func (s *Service) Track(ctx context.Context, id string) (*spotify.Track, error) {
	key := keyPrefixTrack + id

	if data, ok := s.cacheGet(ctx, key); ok {
		var track spotify.Track
		if err := json.Unmarshal(data, &track); err == nil {
			if s.log != nil {
				s.log.Debug("cache hit for track", "id", id)
			}
			return &track, nil
		}
		if s.log != nil {
			s.log.Warn("failed to unmarshal cached track", "id", id)
		}
	}

	track, err := s.client.Track(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("track: %w", err)
	}
	s.cachePut(ctx, key, track, trackTTL)
	return track, nil
}

// Playlist fetches playlist metadata with its first member page (cached).
func (s *Service) Playlist(ctx context.Context, id string) (*spotify.Playlist, error) {
	key := keyPrefixPlaylist + id

	if data, ok := s.cacheGet(ctx, key); ok {
		var playlist spotify.Playlist
		if err := json.Unmarshal(data, &playlist); err == nil {
			if s.log != nil {
				s.log.Debug("cache hit for playlist", "id", id)
			}
			return &playlist, nil
		}
		if s.log != nil {
			s.log.Warn("failed to unmarshal cached playlist", "id", id)
		}
	}

	playlist, err := s.client.Playlist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("playlist: %w", err)
	}
	s.cachePut(ctx, key, playlist, playlistTTL)
	return playlist, nil
}

// PlaylistTracks fetches one page of playlist members (cached).
func (s *Service) PlaylistTracks(ctx context.Context, id string, offset int) (*spotify.TrackPage, error) {
	key := fmt.Sprintf("%s%s:%d", keyPrefixPlaylistTracks, id, offset)

	if data, ok := s.cacheGet(ctx, key); ok {
		var page spotify.TrackPage
		if err := json.Unmarshal(data, &page); err == nil {
			return &page, nil
		}
	}

	page, err := s.client.PlaylistTracks(ctx, id, offset)
	if err != nil {
		return nil, fmt.Errorf("playlist tracks: %w", err)
	}
	s.cachePut(ctx, key, page, playlistTTL)
	return page, nil
}

// Album fetches album metadata with its first member page (cached).
func (s *Service) Album(ctx context.Context, id string) (*spotify.Album, error) {
	key := keyPrefixAlbum + id

	if data, ok := s.cacheGet(ctx, key); ok {
		var album spotify.Album
		if err := json.Unmarshal(data, &album); err == nil {
			if s.log != nil {
				s.log.Debug("cache hit for album", "id", id)
			}
			return &album, nil
		}
		if s.log != nil {
			s.log.Warn("failed to unmarshal cached album", "id", id)
		}
	}

	album, err := s.client.Album(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("album: %w", err)
	}
	s.cachePut(ctx, key, album, albumTTL)
	return album, nil
}

// AlbumTracks fetches one page of album members (cached).
func (s *Service) AlbumTracks(ctx context.Context, id string, offset int) (*spotify.AlbumTrackPage, error) {
	key := fmt.Sprintf("%s%s:%d", keyPrefixAlbumTracks, id, offset)

	if data, ok := s.cacheGet(ctx, key); ok {
		var page spotify.AlbumTrackPage
		if err := json.Unmarshal(data, &page); err == nil {
			return &page, nil
		}
	}

	page, err := s.client.AlbumTracks(ctx, id, offset)
	if err != nil {
		return nil, fmt.Errorf("album tracks: %w", err)
	}
	s.cachePut(ctx, key, page, albumTTL)
	return page, nil
}

// cacheGet reads a key when a cache is configured.
func (s *Service) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(ctx, key)
}

// cachePut stores a value, logging but never failing the operation.
func (s *Service) cachePut(ctx context.Context, key string, v any, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		if s.log != nil {
			s.log.Warn("failed to marshal for cache", "key", key, "error", err)
		}
		return
	}
	if err := s.cache.Set(ctx, key, data, ttl); err != nil {
		if s.log != nil {
			s.log.Warn("failed to cache response", "key", key, "error", err)
		}
	}
}
