package spotify

import "strings"

// tokenResponse is the accounts service token payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Artist is a track or album artist.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Track is a catalog track.
type Track struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Artists      []Artist          `json:"artists"`
	DurationMS   int               `json:"duration_ms"`
	ExternalURLs map[string]string `json:"external_urls"`
}

// ArtistNames joins all artist display names.
func (t *Track) ArtistNames() string {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// URL returns the track's open.spotify.com URL.
func (t *Track) URL() string {
	if u, ok := t.ExternalURLs["spotify"]; ok {
		return u
	}
	return "https://open.spotify.com/track/" + t.ID
}

// PlaylistItem wraps a playlist member. Track may be null for removed or
// unavailable entries.
type PlaylistItem struct {
	Track *Track `json:"track"`
}

// TrackPage is one page of playlist members. Next is empty on the last page.
type TrackPage struct {
	Items  []PlaylistItem `json:"items"`
	Next   string         `json:"next"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// Playlist is a catalog playlist with its first page of members embedded.
type Playlist struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Tracks TrackPage `json:"tracks"`
}

// AlbumTrackPage is one page of album members.
type AlbumTrackPage struct {
	Items  []Track `json:"items"`
	Next   string  `json:"next"`
	Total  int     `json:"total"`
	Offset int     `json:"offset"`
}

// Album is a catalog album with its first page of members embedded.
type Album struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Artists     []Artist       `json:"artists"`
	TotalTracks int            `json:"total_tracks"`
	Tracks      AlbumTrackPage `json:"tracks"`
}

// ArtistName returns the primary album artist, or "" when unknown.
func (a *Album) ArtistName() string {
	if len(a.Artists) == 0 {
		return ""
	}
	return a.Artists[0].Name
}
