package walstream

import "github.com/rewardvault/reward-vault-go/internal/types"

// WALStreamer defines the interface for streaming WAL logs to a replica.
type WALStreamer interface {
	// Stream sends a WAL log entry to the replica.
	// This method should be non-blocking.
	Stream(log types.WalLogEntry)
}
