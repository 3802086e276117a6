package mysql

import (
	"context"
	"database/sql"
	"errors"

	driver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/NisaargPendal/local-clipboard-share/internal/domain"
	"github.com/NisaargPendal/local-clipboard-share/internal/identifier"
	"github.com/NisaargPendal/local-clipboard-share/internal/model"
)

const maxInsertAttempts = 16

// MySQL error 1062: duplicate entry for a unique key.
const errDuplicateKey = 1062

func (s *Store) CreateEntry(ctx context.Context, content string) (model.Entry, error) {
	for i := 0; i < maxInsertAttempts; i++ {
		entry := model.Entry{
			ID:        identifier.New(),
			Content:   content,
			Timestamp: identifier.NewMarker(),
		}
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO entries (id, content, timestamp_token) VALUES (?, ?, ?)",
			entry.ID, entry.Content, entry.Timestamp,
		)
		if err == nil {
			return entry, nil
		}
		var mysqlErr *driver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateKey {
			continue
		}
		s.log.Error("sql create entry failed", zap.String("id", entry.ID), zap.Error(err))
		return model.Entry{}, err
	}
	return model.Entry{}, domain.ErrIdentifierExhausted
}

func (s *Store) GetEntry(ctx context.Context, id string) (model.Entry, error) {
	entry := model.Entry{ID: id}
	err := s.db.QueryRowContext(ctx,
		"SELECT content, timestamp_token FROM entries WHERE id = ?", id,
	).Scan(&entry.Content, &entry.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Entry{}, domain.ErrEntryNotFound
	}
	if err != nil {
		s.log.Error("sql get entry failed", zap.String("id", id), zap.Error(err))
		return model.Entry{}, err
	}
	return entry, nil
}
