package store

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/NisaargPendal/local-clipboard-share/internal/config"
	"github.com/NisaargPendal/local-clipboard-share/internal/repository"
	"github.com/NisaargPendal/local-clipboard-share/internal/store/file"
	"github.com/NisaargPendal/local-clipboard-share/internal/store/mysql"
)

func NewStore(cfg *config.Config, logger *zap.Logger) (repository.EntryRepository, error) {
	if cfg.MySQLDSN == "" {
		return file.New(cfg.StorageFile, logger), nil
	}
	sqlDB, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Error("mysql open failed", zap.Error(err))
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Error("mysql ping failed", zap.Error(err))
		return nil, err
	}
	return mysql.New(sqlDB, logger), nil
}
