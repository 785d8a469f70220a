// Package ledger persists which tracks have already been downloaded.
//
// The backing store is a single JSON file mapping item identity to a
// download record. It is the primary, but not the only, source of truth
// for "already downloaded": the filesystem reconciler in internal/library
// can re-derive the same answer from embedded tags.
package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// timeLayout is the ISO-8601 local timestamp written to downloaded_at.
const timeLayout = "2006-01-02T15:04:05.000000"

// Record is the persisted state of one downloaded track.
type Record struct {
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	Source       string `json:"source"`
	Path         string `json:"path"`
	Playlist     string `json:"playlist"`
	DownloadedAt string `json:"downloaded_at"`
}

// Entry is a Record paired with its identity, as returned by List.
type Entry struct {
	ID string
	Record
}

// store is the on-disk shape: one top-level "songs" object.
type store struct {
	Songs map[string]Record `json:"songs"`
}

// Store is an in-memory view of the ledger file. Every mutation rewrites
// the full file; a single process is assumed to own the file at a time.
type Store struct {
	path string
	log  *slog.Logger
	data store
	now  func() time.Time
}

// Open loads the ledger from path. A missing or corrupt file degrades to an
// empty store rather than failing: the filesystem reconciler can recover
// the same state from embedded tags.
func Open(path string, log *slog.Logger) *Store {
	s := &Store{
		path: path,
		log:  log,
		data: store{Songs: make(map[string]Record)},
		now:  time.Now,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) && log != nil {
			log.Warn("ledger unreadable, starting empty", "path", path, "error", err)
		}
		return s
	}

	var data store
	if err := json.Unmarshal(raw, &data); err != nil {
		if log != nil {
			log.Warn("ledger corrupt, starting empty", "path", path, "error", err)
		}
		return s
	}
	if data.Songs == nil {
		data.Songs = make(map[string]Record)
	}
	s.data = data
	return s
}

// persist rewrites the full backing file. Write failures propagate: a
// silently failed persist would break the source-of-truth guarantee.
func (s *Store) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPersist, err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersist, s.path, err)
	}
	return nil
}

// IsDownloaded reports whether an identity is registered.
func (s *Store) IsDownloaded(id string) bool {
	_, ok := s.data.Songs[id]
	return ok
}

// Path returns the recorded output path for an identity.
func (s *Store) Path(id string) (string, bool) {
	rec, ok := s.data.Songs[id]
	return rec.Path, ok
}

// Get returns the full record for an identity.
func (s *Store) Get(id string) (Record, bool) {
	rec, ok := s.data.Songs[id]
	return rec, ok
}

// Register inserts or overwrites the record for id, stamps the current
// time, and persists.
func (s *Store) Register(id, title, artist, source, path, playlist string) error {
	s.data.Songs[id] = Record{
		Title:        title,
		Artist:       artist,
		Source:       source,
		Path:         path,
		Playlist:     playlist,
		DownloadedAt: s.now().Format(timeLayout),
	}
	return s.persist()
}

// Remove deletes the record for id. Returns false without error when the
// id is absent; nothing is persisted in that case.
func (s *Store) Remove(id string) (bool, error) {
	if _, ok := s.data.Songs[id]; !ok {
		return false, nil
	}
	delete(s.data.Songs, id)
	if err := s.persist(); err != nil {
		return false, err
	}
	return true, nil
}

// Update applies a partial update to an existing record. Nil fields are
// left unchanged. Returns false without persisting when the id is absent.
func (s *Store) Update(id string, path, playlist *string) (bool, error) {
	rec, ok := s.data.Songs[id]
	if !ok {
		return false, nil
	}
	if path != nil {
		rec.Path = *path
	}
	if playlist != nil {
		rec.Playlist = *playlist
	}
	s.data.Songs[id] = rec
	if err := s.persist(); err != nil {
		return false, err
	}
	return true, nil
}

// Clear replaces the entire store with an empty one and persists.
func (s *Store) Clear() error {
	s.data = store{Songs: make(map[string]Record)}
	return s.persist()
}

// List returns a snapshot of all records. Order is not stable across
// reloads; the backing format is an unordered mapping.
func (s *Store) List() []Entry {
	entries := make([]Entry, 0, len(s.data.Songs))
	for id, rec := range s.data.Songs {
		entries = append(entries, Entry{ID: id, Record: rec})
	}
	return entries
}

// Len returns the number of registered records.
func (s *Store) Len() int {
	return len(s.data.Songs)
}
