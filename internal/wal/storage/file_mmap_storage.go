package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/rewardvault/reward-vault-go/internal/types"
)

const defaultMmapFileSize int64 = 1024 * 1024 * 10 // 10 MB

// FileMMapStorage is a fixed-capacity memory-mapped WAL backend. Each file
// starts with a WALHeader; CanWrite reports false once the mapping is full so
// the WAL can trigger a rotation.
type FileMMapStorage struct {
	file   *os.File
	mmap   mmap.MMap
	path   string
	seqNo  uint64
	offset int64

	sizeMapInBytes int64
}

var _ types.Storage = (*FileMMapStorage)(nil)

type FileMMapStorageOps struct {
	MMapFileSizeInBytes int64
}

func NewFileMMapStorage(path string, seqNo uint64, opts ...FileMMapStorageOps) (*FileMMapStorage, error) {
	sizeMapInBytes := defaultMmapFileSize
	for _, val := range opts {
		if val.MMapFileSizeInBytes > 0 {
			sizeMapInBytes = val.MMapFileSizeInBytes
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	currentSize := info.Size()
	isNewFile := currentSize == 0

	if isNewFile {
		if err := f.Truncate(sizeMapInBytes); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to truncate file: %w", err)
		}
	} else {
		// If the file exists, use its size for the mapping
		sizeMapInBytes = currentSize
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to mmap file: %w", err)
	}

	s := &FileMMapStorage{
		file:           f,
		mmap:           m,
		path:           path,
		seqNo:          seqNo,
		sizeMapInBytes: sizeMapInBytes,
	}

	if isNewFile {
		hdr := types.WALHeader{
			Magic:   types.WALMagic,
			Version: types.WALVersion1,
			Status:  types.WALStatusOpen,
			SeqNo:   seqNo,
		}
		var buf bytes.Buffer
		if err := binary.Write(&buf, binary.LittleEndian, &hdr); err != nil {
			s.Close()
			return nil, err
		}
		copy(s.mmap, buf.Bytes())
		s.offset = int64(types.WALHeaderSize)
	} else {
		// Existing file, read header to restore offset
		var hdr types.WALHeader
		if err := binary.Read(bytes.NewReader(m[:types.WALHeaderSize]), binary.LittleEndian, &hdr); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to read WAL header from existing file: %w", err)
		}
		s.seqNo = hdr.SeqNo
		if hdr.Status == types.WALStatusClosed {
			s.offset = int64(types.WALHeaderSize + hdr.DataLength)
		} else {
			// Open file from a crashed run: resume after the last non-zero byte.
			payload := bytes.TrimRight(m[types.WALHeaderSize:], "\x00")
			s.offset = int64(types.WALHeaderSize + len(payload))
		}
	}

	return s, nil
}

func (s *FileMMapStorage) Write(data []byte) error {
	copy(s.mmap[s.offset:], data)
	s.offset += int64(len(data))
	return nil
}

func (s *FileMMapStorage) CanWrite(size int) bool {
	// For mmap, the capacity is the total length of the map.
	return s.offset+int64(size) <= int64(len(s.mmap))
}

func (s *FileMMapStorage) Size() (int64, error) {
	return s.offset - int64(types.WALHeaderSize), nil
}

func (s *FileMMapStorage) Flush() error {
	return s.mmap.Flush()
}

// Rotate finalizes the current mapping and opens a fresh one at newPath with
// the next sequence number.
func (s *FileMMapStorage) Rotate(newPath string) error {
	if err := s.FinalizeAndClose(); err != nil {
		return err
	}

	next, err := NewFileMMapStorage(newPath, s.seqNo+1, FileMMapStorageOps{MMapFileSizeInBytes: s.sizeMapInBytes})
	if err != nil {
		return err
	}
	*s = *next
	return nil
}

// FinalizeAndClose writes the closed header with the final data length, syncs
// the mapping and releases it.
func (s *FileMMapStorage) FinalizeAndClose() error {
	if s.mmap == nil {
		return nil
	}

	if err := s.mmap.Flush(); err != nil {
		return err
	}

	hdr := types.WALHeader{
		Magic:      types.WALMagic,
		Version:    types.WALVersion1,
		Status:     types.WALStatusClosed,
		SeqNo:      s.seqNo,
		DataLength: uint64(s.offset - int64(types.WALHeaderSize)),
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &hdr); err != nil {
		return err
	}
	copy(s.mmap, buf.Bytes())

	if err := s.mmap.Flush(); err != nil {
		return err
	}

	if err := s.mmap.Unmap(); err != nil {
		s.file.Close()
		return err
	}
	s.mmap = nil

	return s.file.Close()
}

func (s *FileMMapStorage) Close() error {
	return s.FinalizeAndClose()
}
