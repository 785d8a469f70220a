// Package library re-derives download state from the music tree itself.
//
// The ledger can drift from disk (manual deletion, moves, a ledger wipe),
// so presence checks here read embedded tags instead of trusting the
// ledger. Correctness over speed: every check is a fresh scan, acceptable
// for libraries of hundreds of files.
package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bue221/music-downloader/internal/tags"
)

const (
	// CollectionsDir holds one subdirectory per named collection.
	CollectionsDir = "collections"
	// UncategorizedDir holds singles that belong to no collection.
	UncategorizedDir = "uncategorized"

	audioExt = ".mp3"
)

// Track is one audio file discovered during a scan. Tracks are transient
// scan results; nothing caches them beyond a single call.
type Track struct {
	ID         string // embedded video id if present, else the filename stem
	Title      string
	Artist     string
	VideoID    string
	Collection string // empty for uncategorized and root-level tracks
	Path       string
}

// Library scans a music tree rooted at a configured directory.
type Library struct {
	root string
}

// New returns a Library over the given root directory.
func New(root string) *Library {
	return &Library{root: root}
}

// Root returns the configured root directory.
func (l *Library) Root() string {
	return l.root
}

// CollectionDir returns the directory for a named collection.
func (l *Library) CollectionDir(name string) string {
	return filepath.Join(l.root, CollectionsDir, name)
}

// UncategorizedPath returns the bucket directory for collection-less tracks.
func (l *Library) UncategorizedPath() string {
	return filepath.Join(l.root, UncategorizedDir)
}

// Collections lists every collection containing at least one audio file,
// alphabetically sorted.
func (l *Library) Collections() []string {
	entries, err := os.ReadDir(filepath.Join(l.root, CollectionsDir))
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if len(audioFiles(filepath.Join(l.root, CollectionsDir, e.Name()))) > 0 {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Tracks lists every audio file directly inside the named collection.
func (l *Library) Tracks(collection string) []Track {
	dir := filepath.Join(l.root, CollectionsDir, collection)
	var tracks []Track
	for _, path := range audioFiles(dir) {
		tracks = append(tracks, readTrack(path, collection))
	}
	return tracks
}

// All concatenates every collection's tracks, the uncategorized bucket, and
// audio files directly in the root. The three scopes are scanned
// independently and not deduplicated: a file physically present in two
// scopes appears twice.
func (l *Library) All() []Track {
	var all []Track
	for _, name := range l.Collections() {
		all = append(all, l.Tracks(name)...)
	}
	for _, path := range audioFiles(l.UncategorizedPath()) {
		all = append(all, readTrack(path, ""))
	}
	for _, path := range audioFiles(l.root) {
		all = append(all, readTrack(path, ""))
	}
	return all
}

// FindByNativeID scans the whole tree for a track whose embedded id matches.
// First match wins when duplicates exist.
func (l *Library) FindByNativeID(nativeID string) (Track, bool) {
	for _, track := range l.All() {
		if track.VideoID == nativeID {
			return track, true
		}
	}
	return Track{}, false
}

// IsPresent reports whether a track with the given embedded id exists
// anywhere in the tree.
func (l *Library) IsPresent(nativeID string) bool {
	_, ok := l.FindByNativeID(nativeID)
	return ok
}

// Stats returns the track count per collection.
func (l *Library) Stats() map[string]int {
	stats := make(map[string]int)
	for _, name := range l.Collections() {
		stats[name] = len(l.Tracks(name))
	}
	return stats
}

// audioFiles returns the audio files directly inside dir, no recursion.
func audioFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), audioExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths
}

// readTrack builds a Track from embedded tags, falling back to parsing the
// filename as "Artist - Title" when tags are absent.
func readTrack(path, collection string) Track {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	fileArtist, fileTitle := parseStem(stem)

	track := Track{
		Title:      fileTitle,
		Artist:     fileArtist,
		Collection: collection,
		Path:       path,
	}

	meta, err := tags.Read(path)
	if err == nil {
		if meta.Title != "" {
			track.Title = meta.Title
		}
		if meta.Artist != "" {
			track.Artist = meta.Artist
		}
		track.VideoID = meta.VideoID
	}

	track.ID = track.VideoID
	if track.ID == "" {
		track.ID = stem
	}
	return track
}

// parseStem splits a filename stem formatted "Artist - Title". Stems
// without a separator become the title with an unknown artist.
func parseStem(stem string) (artist, title string) {
	if artist, title, ok := strings.Cut(stem, " - "); ok {
		return strings.TrimSpace(artist), strings.TrimSpace(title)
	}
	return "Unknown", stem
}
