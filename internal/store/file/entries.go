package file

import (
	"context"

	"go.uber.org/zap"

	"github.com/NisaargPendal/local-clipboard-share/internal/domain"
	"github.com/NisaargPendal/local-clipboard-share/internal/identifier"
	"github.com/NisaargPendal/local-clipboard-share/internal/model"
)

const maxGenerateAttempts = 16

func (s *Store) CreateEntry(_ context.Context, content string) (model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.freeIdentifier()
	if err != nil {
		return model.Entry{}, err
	}
	record := entryRecord{
		Content:   content,
		Timestamp: identifier.NewMarker(),
	}
	s.entries[id] = record
	if err := s.persist(); err != nil {
		delete(s.entries, id)
		s.log.Error("persist entries failed",
			zap.String("path", s.path),
			zap.String("id", id),
			zap.Error(err),
		)
		return model.Entry{}, err
	}
	return model.Entry{ID: id, Content: record.Content, Timestamp: record.Timestamp}, nil
}

func (s *Store) GetEntry(_ context.Context, id string) (model.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.entries[id]
	if !ok {
		return model.Entry{}, domain.ErrEntryNotFound
	}
	return model.Entry{ID: id, Content: record.Content, Timestamp: record.Timestamp}, nil
}

// freeIdentifier regenerates on collision rather than overwriting, so an
// issued identifier always keeps resolving to the entry it was issued for.
// Callers must hold s.mu.
func (s *Store) freeIdentifier() (string, error) {
	for i := 0; i < maxGenerateAttempts; i++ {
		id := identifier.New()
		if _, exists := s.entries[id]; !exists {
			return id, nil
		}
	}
	return "", domain.ErrIdentifierExhausted
}
