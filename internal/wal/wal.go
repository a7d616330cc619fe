package wal

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/rewardvault/reward-vault-go/internal/types"
	"github.com/rewardvault/reward-vault-go/internal/wal/formatter"
	"github.com/rewardvault/reward-vault-go/internal/wal/storage"
)

// WAL buffers vault log entries in memory and writes them to the underlying
// storage on Flush. Entries that have not been flushed are not durable; the
// actor commits or reverts ledger mutations based on the flush outcome.
type WAL struct {
	seqNo     uint64
	formatter types.LogFormatter
	storage   types.Storage
	buffer    []types.WalLogEntry
}

var _ types.WAL = (*WAL)(nil)

// NewWAL creates a WAL at path. A nil formatter defaults to JSONL, a nil
// storage to a plain append file.
func NewWAL(path string, seqNo uint64, format types.LogFormatter, store types.Storage) (*WAL, error) {
	if format == nil {
		format = formatter.NewJSONFormatter()
	}
	if store == nil {
		var err error
		store, err = storage.NewFileStorage(path)
		if err != nil {
			return nil, err
		}
	}

	return &WAL{
		seqNo:     seqNo,
		formatter: format,
		storage:   store,
		buffer:    make([]types.WalLogEntry, 0, 4096),
	}, nil
}

// Log appends an entry to the in-memory buffer.
func (w *WAL) Log(entry types.WalLogEntry) error {
	w.buffer = append(w.buffer, entry)
	return nil
}

// Flush writes all buffered entries to storage and syncs it.
func (w *WAL) Flush() error {
	if len(w.buffer) == 0 {
		return nil
	}

	data, err := w.formatter.Encode(w.buffer)
	if err != nil {
		return err
	}

	if !w.storage.CanWrite(len(data)) {
		return types.ErrWALFull
	}

	if err := w.storage.Write(data); err != nil {
		return err
	}

	w.buffer = w.buffer[:0]
	return w.storage.Flush()
}

// Reset discards any buffered, unflushed entries.
func (w *WAL) Reset() {
	w.buffer = w.buffer[:0]
}

// Size returns the number of bytes already written to storage.
func (w *WAL) Size() (int64, error) {
	return w.storage.Size()
}

// SeqNo returns the WAL file sequence number.
func (w *WAL) SeqNo() uint64 {
	return w.seqNo
}

func (w *WAL) Close() error {
	return w.storage.Close()
}

// Rotate switches the storage to a fresh file at path and bumps the sequence
// number. Buffered entries must be flushed or reset first.
func (w *WAL) Rotate(path string) error {
	if len(w.buffer) != 0 {
		return types.ErrPendingFlush
	}
	if err := w.storage.Rotate(path); err != nil {
		return err
	}
	w.seqNo++
	return nil
}

// ParseWAL reads a WAL file and returns its entries plus the file header, if
// the file carries one. Plain-file WALs have no header and return nil.
func ParseWAL(path string, format types.LogFormatter) ([]types.WalLogEntry, *types.WALHeader, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var hdr *types.WALHeader
	data := raw
	if len(raw) >= types.WALHeaderSize {
		var h types.WALHeader
		if err := binary.Read(bytes.NewReader(raw[:types.WALHeaderSize]), binary.LittleEndian, &h); err == nil && h.Magic == types.WALMagic {
			hdr = &h
			end := types.WALHeaderSize + int(h.DataLength)
			if h.Status == types.WALStatusOpen || end > len(raw) {
				// Open or truncated file: take everything after the header
				// and strip the mmap zero padding.
				data = bytes.TrimRight(raw[types.WALHeaderSize:], "\x00")
			} else {
				data = raw[types.WALHeaderSize:end]
			}
		}
	}

	entries, err := format.Decode(data)
	if err != nil {
		return nil, hdr, err
	}
	return entries, hdr, nil
}
