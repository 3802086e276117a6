package mysql

import (
	"database/sql"

	"go.uber.org/zap"
)

type Store struct {
	db  *sql.DB
	log *zap.Logger
}

func New(db *sql.DB, logger *zap.Logger) *Store {
	return &Store{db: db, log: logger}
}
