// Package file implements the JSON-file-backed entry store. The whole
// mapping lives in memory; the backing file is rewritten in full after
// every creation and only read once, at construction.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"go.uber.org/zap"
)

type entryRecord struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type Store struct {
	mu      sync.RWMutex
	path    string
	entries map[string]entryRecord
	log     *zap.Logger
}

// New loads the mapping from path. A missing or unparsable file yields an
// empty store; the discard is logged but never surfaced to the caller.
func New(path string, logger *zap.Logger) *Store {
	s := &Store{
		path:    path,
		entries: make(map[string]entryRecord),
		log:     logger,
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("storage file unreadable, starting empty",
				zap.String("path", s.path),
				zap.Error(err),
			)
		}
		return
	}
	var entries map[string]entryRecord
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.log.Warn("storage file corrupt, starting empty",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return
	}
	if entries != nil {
		s.entries = entries
	}
}

// persist rewrites the backing file from the full mapping. Callers must
// hold s.mu. The write goes to a temp file first so a crash mid-write
// cannot corrupt the previous contents.
func (s *Store) persist() error {
	raw, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
