// Package track persists which slugs already produced a page, so a slug
// is never generated twice across runs.
package track

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrDuplicate means Record was called for a slug that is already
// tracked. The orchestrator filters tracked slugs out before
// generating, so hitting this is a bug, not a data condition.
var ErrDuplicate = errors.New("slug already tracked")

// Entry is what Save writes per slug.
type Entry struct {
	GeneratedAt string `json:"generated_at"` // RFC 3339, UTC
	Source      string `json:"source"`
}

// Store is an insertion-ordered slug -> Entry mapping. Order is kept
// through save/load round-trips so re-saves produce append-only diffs.
type Store struct {
	slugs []string
	index map[string]Entry
}

func New() *Store {
	return &Store{index: make(map[string]Entry)}
}

// Load reads the persisted mapping. A missing file is the cold-start
// case and yields an empty store; an unreadable or unparseable file is
// an error, because guessing previous state risks duplicate pages.
func Load(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tracking file: %w", err)
	}

	s := New()
	if err := s.unmarshal(b); err != nil {
		return nil, fmt.Errorf("parse tracking file %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) Contains(slug string) bool {
	_, ok := s.index[slug]
	return ok
}

func (s *Store) Len() int { return len(s.slugs) }

// Record adds a slug in memory. The timestamp is truncated to seconds
// and stored in UTC so the serialized form is stable.
func (s *Store) Record(slug string, at time.Time, source string) error {
	if s.Contains(slug) {
		return fmt.Errorf("%w: %q", ErrDuplicate, slug)
	}
	s.slugs = append(s.slugs, slug)
	s.index[slug] = Entry{
		GeneratedAt: at.UTC().Truncate(time.Second).Format(time.RFC3339),
		Source:      source,
	}
	return nil
}

// Get returns the entry for slug, if tracked.
func (s *Store) Get(slug string) (Entry, bool) {
	e, ok := s.index[slug]
	return e, ok
}

// Slugs returns tracked slugs in insertion order.
func (s *Store) Slugs() []string {
	out := make([]string, len(s.slugs))
	copy(out, s.slugs)
	return out
}

// Save writes the whole mapping atomically: temp file in the same
// directory, then rename, so a crash mid-write leaves the previous
// tracking file intact.
func (s *Store) Save(path string) error {
	b, err := s.marshal()
	if err != nil {
		return fmt.Errorf("encode tracking file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create tracking dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write tracking file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace tracking file: %w", err)
	}
	return nil
}

// marshal builds the JSON object by hand: encoding/json sorts map keys,
// which would reshuffle the file on every save.
func (s *Store) marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, slug := range s.slugs {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		key, err := json.Marshal(slug)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")
		val, err := json.MarshalIndent(s.index[slug], "  ", "  ")
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	if len(s.slugs) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func (s *Store) unmarshal(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected top-level object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		slug, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected slug key, got %v", tok)
		}

		var e Entry
		if err := dec.Decode(&e); err != nil {
			return fmt.Errorf("entry for %q: %w", slug, err)
		}
		if s.Contains(slug) {
			return fmt.Errorf("%w: %q appears twice in tracking file", ErrDuplicate, slug)
		}
		s.slugs = append(s.slugs, slug)
		s.index[slug] = e
	}

	if _, err := dec.Token(); err != nil { // closing brace
		return err
	}
	return nil
}
