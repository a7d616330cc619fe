package storage

import (
	"os"

	"github.com/rewardvault/reward-vault-go/internal/types"
)

// FileStorage is the plain append-file WAL backend. It has no size bound and
// no header; durability comes from fsync on Flush.
type FileStorage struct {
	file *os.File
}

var _ types.Storage = (*FileStorage)(nil)

func NewFileStorage(path string) (*FileStorage, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileStorage{file: f}, nil
}

func (s *FileStorage) Write(data []byte) error {
	_, err := s.file.Write(data)
	return err
}

// CanWrite always succeeds; a plain file grows without bound.
func (s *FileStorage) CanWrite(size int) bool {
	return true
}

func (s *FileStorage) Size() (int64, error) {
	info, err := s.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (s *FileStorage) Flush() error {
	return s.file.Sync()
}

func (s *FileStorage) Close() error {
	return s.file.Close()
}

func (s *FileStorage) Rotate(newPath string) error {
	f, err := os.OpenFile(newPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	s.file.Close()
	s.file = f
	return nil
}
