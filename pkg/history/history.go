// Package history stores recently-run CQL queries. The Store interface keeps
// the search command decoupled from the filesystem; the file-backed
// implementation persists to history.json in the .confluence/ directory.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/grandcamel/confluence-assistant-skills/pkg/dotdir"
)

const historyFile = "history.json"

// Entry is one recorded query.
type Entry struct {
	Query string    `json:"query"`
	RunAt time.Time `json:"run_at"`
}

// Store records and recalls queries.
type Store interface {
	// Append records a query, deduplicating consecutive repeats.
	Append(query string) error

	// Recent returns up to n entries, newest first.
	Recent(n int) ([]Entry, error)

	// Clear removes all recorded entries.
	Clear() error
}

// FileStore persists history as a JSON file, rewriting the whole file on
// every append, bounded to maxSize entries.
type FileStore struct {
	path    string
	maxSize int
	now     func() time.Time
}

// NewFileStore creates a Store writing under the resolved .confluence/
// directory. maxSize bounds the retained entries; zero keeps 50.
func NewFileStore(overrideDir string, maxSize int) (*FileStore, error) {
	dir, err := dotdir.NewManager().Target(overrideDir)
	if err != nil {
		return nil, err
	}

	if maxSize <= 0 {
		maxSize = 50
	}

	return &FileStore{
		path:    filepath.Join(dir, historyFile),
		maxSize: maxSize,
		now:     time.Now,
	}, nil
}

func (s *FileStore) Append(query string) error {
	entries, err := s.load()
	if err != nil {
		return err
	}

	if len(entries) > 0 && entries[len(entries)-1].Query == query {
		return nil
	}

	entries = append(entries, Entry{Query: query, RunAt: s.now()})
	if len(entries) > s.maxSize {
		entries = entries[len(entries)-s.maxSize:]
	}

	return s.save(entries)
}

func (s *FileStore) Recent(n int) ([]Entry, error) {
	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	if n <= 0 || n > len(entries) {
		n = len(entries)
	}

	// Stored oldest-first; return newest-first.
	out := make([]Entry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		out = append(out, entries[i])
	}

	return out, nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing history: %w", err)
	}
	return nil
}

func (s *FileStore) load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}

	return entries, nil
}

func (s *FileStore) save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}

	return nil
}

var _ Store = (*FileStore)(nil)
