package engine

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Info is the probe result for a single item.
type Info struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Uploader string `json:"uploader"`
	Channel  string `json:"channel"`
}

// Artist returns the best available display name for the uploader.
func (i *Info) Artist() string {
	switch {
	case i.Uploader != "":
		return i.Uploader
	case i.Channel != "":
		return i.Channel
	default:
		return "Unknown"
	}
}

// PlaylistEntry is one member of a flat playlist probe.
type PlaylistEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Reference returns a fetchable reference for the entry: the entry URL when
// the probe supplied one, otherwise a watch URL built from the id.
func (e *PlaylistEntry) Reference() (string, bool) {
	if e.URL != "" {
		return e.URL, true
	}
	if e.ID != "" {
		return "https://www.youtube.com/watch?v=" + e.ID, true
	}
	return "", false
}

// PlaylistInfo is the probe result for a playlist.
type PlaylistInfo struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Entries []PlaylistEntry `json:"entries"`
}

func parseInfo(raw []byte) (*Info, error) {
	var info Info
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("decode probe output: %w", err)
	}
	if info.ID == "" {
		return nil, errors.New("probe output missing id")
	}
	if info.Title == "" {
		info.Title = "Unknown"
	}
	return &info, nil
}

func parsePlaylist(raw []byte) (*PlaylistInfo, error) {
	var info PlaylistInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("decode playlist probe output: %w", err)
	}
	if info.Title == "" {
		info.Title = "Unknown Playlist"
	}
	return &info, nil
}
