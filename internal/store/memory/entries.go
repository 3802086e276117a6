package memory

import (
	"context"

	"github.com/NisaargPendal/local-clipboard-share/internal/domain"
	"github.com/NisaargPendal/local-clipboard-share/internal/identifier"
	"github.com/NisaargPendal/local-clipboard-share/internal/model"
)

const maxGenerateAttempts = 16

func (s *Store) CreateEntry(_ context.Context, content string) (model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < maxGenerateAttempts; i++ {
		id := identifier.New()
		if _, exists := s.entries[id]; exists {
			continue
		}
		entry := model.Entry{
			ID:        id,
			Content:   content,
			Timestamp: identifier.NewMarker(),
		}
		s.entries[id] = entry
		return entry, nil
	}
	return model.Entry{}, domain.ErrIdentifierExhausted
}

func (s *Store) GetEntry(_ context.Context, id string) (model.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	if !ok {
		return model.Entry{}, domain.ErrEntryNotFound
	}
	return entry, nil
}
