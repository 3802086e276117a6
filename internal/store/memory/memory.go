// Package memory implements the entry store without persistence. It backs
// tests and ad-hoc runs where no durable state is wanted.
package memory

import (
	"sync"

	"go.uber.org/zap"

	"github.com/NisaargPendal/local-clipboard-share/internal/model"
)

type Store struct {
	mu      sync.RWMutex
	entries map[string]model.Entry
	log     *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{
		entries: make(map[string]model.Entry),
		log:     logger,
	}
}
