package file

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NisaargPendal/local-clipboard-share/internal/domain"
	"github.com/NisaargPendal/local-clipboard-share/internal/identifier"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "clipboard_data.json")
}

func TestCreateThenGet(t *testing.T) {
	s := New(storePath(t), zap.NewNop())

	created, err := s.CreateEntry(context.Background(), "hello world")
	require.NoError(t, err)
	require.Len(t, created.ID, identifier.Length)
	require.NotEmpty(t, created.Timestamp)

	got, err := s.GetEntry(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "hello world", got.Content)
	require.Equal(t, created.Timestamp, got.Timestamp)
}

func TestGetUnknownIdentifier(t *testing.T) {
	s := New(storePath(t), zap.NewNop())

	_, err := s.GetEntry(context.Background(), "doesnotexist")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestEmptyContentIsNotAMiss(t *testing.T) {
	s := New(storePath(t), zap.NewNop())

	created, err := s.CreateEntry(context.Background(), "")
	require.NoError(t, err)

	got, err := s.GetEntry(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "", got.Content)
}

func TestReloadPreservesEntries(t *testing.T) {
	path := storePath(t)
	s := New(path, zap.NewNop())

	contents := []string{"first", "second", ""}
	ids := make(map[string]string, len(contents))
	for _, content := range contents {
		created, err := s.CreateEntry(context.Background(), content)
		require.NoError(t, err)
		ids[created.ID] = content
	}

	reloaded := New(path, zap.NewNop())
	for id, content := range ids {
		got, err := reloaded.GetEntry(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, content, got.Content)
	}
}

func TestMissingFileYieldsEmptyStore(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope", "clipboard_data.json"), zap.NewNop())

	_, err := s.GetEntry(context.Background(), "anything")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestCorruptFileYieldsEmptyStore(t *testing.T) {
	path := storePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o644))

	s := New(path, zap.NewNop())
	_, err := s.GetEntry(context.Background(), "anything")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)

	// The store must still accept writes over the discarded file.
	created, err := s.CreateEntry(context.Background(), "fresh")
	require.NoError(t, err)
	got, err := s.GetEntry(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "fresh", got.Content)
}

func TestPersistedLayout(t *testing.T) {
	path := storePath(t)
	s := New(path, zap.NewNop())

	created, err := s.CreateEntry(context.Background(), "layout check")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Contains(t, onDisk, created.ID)
	require.Equal(t, "layout check", onDisk[created.ID]["content"])
	require.Equal(t, created.Timestamp, onDisk[created.ID]["timestamp"])
}

func TestPersistFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	// A path that is a directory cannot be renamed over.
	path := filepath.Join(dir, "store")
	require.NoError(t, os.Mkdir(path, 0o755))

	s := New(path, zap.NewNop())
	_, err := s.CreateEntry(context.Background(), "doomed")
	require.Error(t, err)
	require.False(t, errors.Is(err, domain.ErrEntryNotFound))
}

func TestConcurrentCreatesLoseNoUpdates(t *testing.T) {
	const workers = 100
	path := storePath(t)
	s := New(path, zap.NewNop())

	var wg sync.WaitGroup
	ids := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := s.CreateEntry(context.Background(), "concurrent")
			if err != nil {
				t.Error(err)
				return
			}
			ids <- created.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, workers)
	for id := range ids {
		seen[id] = struct{}{}
	}
	require.Len(t, seen, workers)

	reloaded := New(path, zap.NewNop())
	for id := range seen {
		_, err := reloaded.GetEntry(context.Background(), id)
		require.NoError(t, err)
	}
}
