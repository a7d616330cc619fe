package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewardvault/reward-vault-go/internal/wal/storage"
)

func TestFileStorageWriteAndSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.wal")

	s, err := storage.NewFileStorage(path)
	require.NoError(t, err)

	require.NoError(t, s.Write([]byte("hello\n")))
	require.NoError(t, s.Flush())

	size, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(6), size)

	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestFileStorageAppendsToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.wal")

	s, err := storage.NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Write([]byte("one\n")))
	require.NoError(t, s.Close())

	s, err = storage.NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Write([]byte("two\n")))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestFileStorageCanWriteAlwaysTrue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.wal")

	s, err := storage.NewFileStorage(path)
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, s.CanWrite(1<<30))
}

func TestFileStorageRotate(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "test.wal.000")
	second := filepath.Join(dir, "test.wal.001")

	s, err := storage.NewFileStorage(first)
	require.NoError(t, err)
	require.NoError(t, s.Write([]byte("first\n")))

	require.NoError(t, s.Rotate(second))
	require.NoError(t, s.Write([]byte("second\n")))
	require.NoError(t, s.Close())

	firstData, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(firstData))

	secondData, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(secondData))
}
