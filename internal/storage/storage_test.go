package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/soundlearn/internal/common/database"
)

func stores(t *testing.T) map[string]Store {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "profile"))
	require.NoError(t, err)

	db, err := database.OpenInMemory()
	require.NoError(t, err)
	gs, err := NewGormStore(db, "kid-1")
	require.NoError(t, err)

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fs,
		"gorm":   gs,
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("soundlearn_progress")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set("soundlearn_progress", []byte(`{"starsEarned":1}`)))
			got, err := s.Get("soundlearn_progress")
			require.NoError(t, err)
			assert.JSONEq(t, `{"starsEarned":1}`, string(got))

			require.NoError(t, s.Set("soundlearn_progress", []byte(`{"starsEarned":2}`)))
			got, err = s.Get("soundlearn_progress")
			require.NoError(t, err)
			assert.JSONEq(t, `{"starsEarned":2}`, string(got))

			require.NoError(t, s.Delete("soundlearn_progress"))
			_, err = s.Get("soundlearn_progress")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.NoError(t, s.Delete("never-written"))
			assert.Error(t, s.Set("../escape", []byte("x")))
		})
	}
}

func TestMemoryStoreQuota(t *testing.T) {
	s := NewMemoryStore()
	s.Quota = 4
	assert.ErrorIs(t, s.Set("k", []byte("12345")), ErrQuotaExceeded)
	assert.NoError(t, s.Set("k", []byte("1234")))
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("analyticsData", []byte(`{}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "analyticsData.json", entries[0].Name())
}

func TestGormStoreProfilesAreIsolated(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	a, err := NewGormStore(db, "a")
	require.NoError(t, err)
	b, err := NewGormStore(db, "b")
	require.NoError(t, err)

	require.NoError(t, a.Set("analyticsData", []byte(`{"totalAttempts":3}`)))
	_, err = b.Get("analyticsData")
	assert.ErrorIs(t, err, ErrNotFound)
}
