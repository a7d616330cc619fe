package actor

import (
	"context"

	"github.com/rewardvault/reward-vault-go/internal/types"
	"github.com/rewardvault/reward-vault-go/internal/walstream"
)

// StreamingActor forwards flushed WAL entries to a replica observer.
// It runs in its own goroutine and processes log entries from its mailbox.
type StreamingActor struct {
	walStreamer walstream.WALStreamer
	mailbox     chan types.WalLogEntry
}

// NewStreamingActor creates a new StreamingActor.
func NewStreamingActor(walStreamer walstream.WALStreamer, mailboxSize int) *StreamingActor {
	return &StreamingActor{
		walStreamer: walStreamer,
		mailbox:     make(chan types.WalLogEntry, mailboxSize),
	}
}

func (a *StreamingActor) Init() error {
	return nil
}

// Receive starts the actor's message processing loop.
func (a *StreamingActor) Receive(ctx context.Context) {
	for {
		select {
		case logEntry := <-a.mailbox:
			a.walStreamer.Stream(logEntry)
		case <-ctx.Done():
			// Drain whatever is already queued before shutting down.
			for {
				select {
				case logEntry := <-a.mailbox:
					a.walStreamer.Stream(logEntry)
				default:
					return
				}
			}
		}
	}
}
