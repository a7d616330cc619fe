package utils_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewardvault/reward-vault-go/internal/types"
	"github.com/rewardvault/reward-vault-go/internal/utils"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestGetWALFilesSortedBySeq(t *testing.T) {
	dir := t.TempDir()
	u := utils.NewDefaultUtils(dir, dir, slog.LevelInfo, nil)

	// Created out of order on purpose.
	touch(t, filepath.Join(dir, types.WALBaseName+".002"))
	touch(t, filepath.Join(dir, types.WALBaseName+".000"))
	touch(t, filepath.Join(dir, types.WALBaseName+".010"))
	touch(t, filepath.Join(dir, "unrelated.txt"))

	files, err := u.GetWALFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, types.WALBaseName+".000"),
		filepath.Join(dir, types.WALBaseName+".002"),
		filepath.Join(dir, types.WALBaseName+".010"),
	}, files)
}

func TestGenNextWALPath(t *testing.T) {
	dir := t.TempDir()
	u := utils.NewDefaultUtils(dir, dir, slog.LevelInfo, nil)

	path, seq, err := u.GenNextWALPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, types.WALBaseName+".000"), path)
	assert.Equal(t, uint64(0), seq)

	touch(t, filepath.Join(dir, types.WALBaseName+".000"))
	touch(t, filepath.Join(dir, types.WALBaseName+".001"))

	path, seq, err = u.GenNextWALPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, types.WALBaseName+".002"), path)
	assert.Equal(t, uint64(2), seq)
}

func TestDisabledWALDir(t *testing.T) {
	u := utils.NewDefaultUtils("", "", slog.LevelInfo, nil)

	files, err := u.GetWALFiles()
	require.NoError(t, err)
	assert.Empty(t, files)

	path, seq, err := u.GenNextWALPath()
	require.NoError(t, err)
	assert.Equal(t, "", path)
	assert.Equal(t, uint64(0), seq)

	assert.Nil(t, u.GenRotatedWALPath())
	assert.Nil(t, u.GenSnapshotPath())
}

func TestGenSnapshotPath(t *testing.T) {
	dir := t.TempDir()
	u := utils.NewDefaultUtils(dir, dir, slog.LevelInfo, nil)

	path := u.GenSnapshotPath()
	require.NotNil(t, path)
	assert.Equal(t, filepath.Join(dir, "snapshot.json"), *path)
}

func TestGetLoggerNotNil(t *testing.T) {
	u := utils.NewDefaultUtils("", "", slog.LevelInfo, nil)
	assert.NotNil(t, u.GetLogger())
}
