package wal_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewardvault/reward-vault-go/internal/types"
	"github.com/rewardvault/reward-vault-go/internal/wal"
	"github.com/rewardvault/reward-vault-go/internal/wal/formatter"
	"github.com/rewardvault/reward-vault-go/internal/wal/storage"
)

func TestWAL_FlushEmptyBufferIsNoOp(t *testing.T) {
	walPath := filepath.Join(t.TempDir(), "test.wal")

	w, err := wal.NewWAL(walPath, 0, nil, nil)
	require.NoError(t, err)
	assert.NoError(t, w.Flush())

	size, err := w.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
}

func TestWAL_FlushFullStorageReturnsErrWALFull(t *testing.T) {
	tempDir := t.TempDir()
	walPath := filepath.Join(tempDir, types.WALBaseName+".000")

	// Region barely larger than the header so the first flush cannot fit.
	store, err := storage.NewFileMMapStorage(walPath, 0, storage.FileMMapStorageOps{
		MMapFileSizeInBytes: types.WALHeaderSize + 8,
	})
	require.NoError(t, err)

	w, err := wal.NewWAL(walPath, 0, formatter.NewJSONFormatter(), store)
	require.NoError(t, err)

	require.NoError(t, w.Log(sampleEntries()[0]))
	err = w.Flush()
	assert.ErrorIs(t, err, types.ErrWALFull)
}

func TestWAL_FullThenRotateRecovers(t *testing.T) {
	tempDir := t.TempDir()
	walPath := filepath.Join(tempDir, types.WALBaseName+".000")

	// Rotation reopens the next file with the same capacity, so the region is
	// sized from the encoded entry: one entry fits, two do not.
	jsonFmt := formatter.NewJSONFormatter()
	encoded, err := jsonFmt.Encode([]types.WalLogEntry{sampleEntries()[0]})
	require.NoError(t, err)

	store, err := storage.NewFileMMapStorage(walPath, 0, storage.FileMMapStorageOps{
		MMapFileSizeInBytes: types.WALHeaderSize + int64(len(encoded)),
	})
	require.NoError(t, err)

	w, err := wal.NewWAL(walPath, 0, jsonFmt, store)
	require.NoError(t, err)

	require.NoError(t, w.Log(sampleEntries()[0]))
	require.NoError(t, w.Log(sampleEntries()[0]))
	require.ErrorIs(t, w.Flush(), types.ErrWALFull)

	// Rotation requires an empty buffer; the actor re-logs after resetting.
	w.Reset()
	nextPath := filepath.Join(tempDir, types.WALBaseName+".001")
	require.NoError(t, w.Rotate(nextPath))

	require.NoError(t, w.Log(sampleEntries()[0]))
	require.NoError(t, w.Flush())
	require.NoError(t, w.Close())

	entries, _, err := wal.ParseWAL(nextPath, jsonFmt)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
