//go:build integration

package mysql

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NisaargPendal/local-clipboard-share/internal/domain"
	"github.com/NisaargPendal/local-clipboard-share/internal/identifier"
)

func TestMySQLStoreIntegration(t *testing.T) {
	ctx := context.Background()
	dsn, cleanup := setupMySQLContainer(t, ctx)
	defer cleanup()

	dbConn, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	defer dbConn.Close()

	store := New(dbConn, zap.NewNop())

	created, err := store.CreateEntry(ctx, "integration payload")
	require.NoError(t, err)
	require.Len(t, created.ID, identifier.Length)
	require.NotEmpty(t, created.Timestamp)

	got, err := store.GetEntry(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "integration payload", got.Content)
	require.Equal(t, created.Timestamp, got.Timestamp)

	_, err = store.GetEntry(ctx, "doesnotexist")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)

	empty, err := store.CreateEntry(ctx, "")
	require.NoError(t, err)
	gotEmpty, err := store.GetEntry(ctx, empty.ID)
	require.NoError(t, err)
	require.Equal(t, "", gotEmpty.Content)
}
