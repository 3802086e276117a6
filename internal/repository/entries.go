package repository

import (
	"context"

	"github.com/NisaargPendal/local-clipboard-share/internal/model"
)

type EntryRepository interface {
	CreateEntry(ctx context.Context, content string) (model.Entry, error)
	GetEntry(ctx context.Context, id string) (model.Entry, error)
}
