// Package history remembers the values written to settings keys so they can
// be recalled in the value field.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dongho-jung/droidset/internal/settings"
)

const (
	// FileName is the name of the history file inside the home directory.
	FileName = "history"
	// MaxEntries is the maximum number of entries kept across all keys.
	MaxEntries = 200
	// MaxPerKey is the maximum number of values returned for one key.
	MaxPerKey = 10
)

// Entry is one written value.
type Entry struct {
	Key       string    `json:"key"` // "<table>/<setting>"
	Type      string    `json:"type"`
	Value     string    `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// Service reads and writes the history file.
type Service struct {
	dir string
	now func() time.Time
}

// New creates a history service storing its file in dir.
func New(dir string) *Service {
	return &Service{dir: dir, now: time.Now}
}

// Path returns the path of the history file.
func (s *Service) Path() string {
	return filepath.Join(s.dir, FileName)
}

func entryKey(key settings.Key) string {
	return key.Namespace.Table() + "/" + key.Setting
}

// Record adds a written value to the front of the history. Writing the same
// value to the same key again moves the existing entry to the front.
func (s *Service) Record(key settings.Key, typ settings.ValueType, value string) error {
	entries, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	id := entryKey(key)
	e := Entry{Key: id, Type: typ.String(), Value: value, Timestamp: s.now()}

	kept := make([]Entry, 0, len(entries)+1)
	kept = append(kept, e)
	for _, old := range entries {
		if old.Key == id && old.Value == value {
			continue
		}
		kept = append(kept, old)
	}
	if len(kept) > MaxEntries {
		kept = kept[:MaxEntries]
	}

	return s.save(kept)
}

// Load returns every entry, most recent first. A missing file is an empty
// history; an unreadable one is moved aside and treated as empty.
func (s *Service) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		_ = os.Rename(s.Path(), s.Path()+".corrupt")
		return []Entry{}, nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

// Values returns the distinct values written to key, most recent first.
func (s *Service) Values(key settings.Key) ([]string, error) {
	entries, err := s.Load()
	if err != nil {
		return nil, err
	}

	id := entryKey(key)
	var values []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.Key != id || seen[e.Value] {
			continue
		}
		seen[e.Value] = true
		values = append(values, e.Value)
		if len(values) == MaxPerKey {
			break
		}
	}
	return values, nil
}

func (s *Service) save(entries []Entry) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil { //nolint:gosec // G301: standard directory permissions
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, FileName+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.Path())
}
