package utils

import (
	"log/slog"

	"github.com/rewardvault/reward-vault-go/internal/types"
)

// MockWAL is a no-op WAL for tests that do not exercise durability.
type MockWAL struct {
	Entries  []types.WalLogEntry
	FlushErr error
}

var _ types.WAL = (*MockWAL)(nil)

func (m *MockWAL) Log(entry types.WalLogEntry) error {
	m.Entries = append(m.Entries, entry)
	return nil
}
func (m *MockWAL) Flush() error             { return m.FlushErr }
func (m *MockWAL) Reset()                   { m.Entries = m.Entries[:0] }
func (m *MockWAL) Size() (int64, error)     { return int64(len(m.Entries)), nil }
func (m *MockWAL) Close() error             { return nil }
func (m *MockWAL) Rotate(path string) error { return nil }
func (m *MockWAL) SeqNo() uint64            { return 0 }

// MockUtils is a mock implementation of the types.Utils interface for testing.
type MockUtils struct{}

var _ types.Utils = (*MockUtils)(nil)

func (m *MockUtils) GetLogger() *slog.Logger { return nil }

func (m *MockUtils) GenRotatedWALPath() *string { return nil }

func (m *MockUtils) GenSnapshotPath() *string { return nil }

func (m *MockUtils) GetWALFiles() ([]string, error) { return nil, nil }

func (m *MockUtils) GenNextWALPath() (string, uint64, error) { return "", 0, nil }
