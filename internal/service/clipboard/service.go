package clipboard

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/NisaargPendal/local-clipboard-share/internal/domain"
	"github.com/NisaargPendal/local-clipboard-share/internal/metrics"
	"github.com/NisaargPendal/local-clipboard-share/internal/model"
	"github.com/NisaargPendal/local-clipboard-share/internal/repository"
	"github.com/NisaargPendal/local-clipboard-share/internal/sse"
)

type Service struct {
	store repository.EntryRepository
	hub   *sse.Hub
	log   *zap.Logger
}

func NewService(store repository.EntryRepository, hub *sse.Hub, logger *zap.Logger) *Service {
	return &Service{store: store, hub: hub, log: logger}
}

func (s *Service) Create(ctx context.Context, content string) (model.Entry, error) {
	entry, err := s.store.CreateEntry(ctx, content)
	if err != nil {
		s.log.Error("store create entry failed", zap.Error(err))
		return model.Entry{}, err
	}
	metrics.EntriesCreated.Inc()
	s.hub.Broadcast(entry)
	return entry, nil
}

func (s *Service) Get(ctx context.Context, id string) (model.Entry, error) {
	entry, err := s.store.GetEntry(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			metrics.EntriesNotFound.Inc()
			return model.Entry{}, err
		}
		s.log.Error("store get entry failed", zap.String("id", id), zap.Error(err))
		return model.Entry{}, err
	}
	return entry, nil
}
