package actor

import "github.com/rewardvault/reward-vault-go/internal/types"

// DrawMessage requests a reward draw for a participant.
type DrawMessage struct {
	Participant  types.Address
	ResponseChan chan DrawResponse
}

// DrawResponse is the response sent back for a DrawMessage.
type DrawResponse struct {
	RequestID uint64
	Reward    types.RewardDescriptor
	Err       error
}

// RedeemMessage requests redemption of a participant's pending reward.
type RedeemMessage struct {
	Participant  types.Address
	ResponseChan chan RedeemResponse
}

// RedeemResponse is the response sent back for a RedeemMessage.
type RedeemResponse struct {
	RequestID uint64
	Reward    types.RewardDescriptor
	Err       error
}

// AddRewardsMessage appends a batch of descriptors to the pool.
type AddRewardsMessage struct {
	Caller       types.Address
	Rewards      []types.RewardDescriptor
	ResponseChan chan error
}

// RemoveRewardMessage removes the descriptor at Index from the pool.
type RemoveRewardMessage struct {
	Caller       types.Address
	Index        int
	ResponseChan chan error
}

// SetConfigMessage mutates one configuration field. Value carries numeric
// fields (salt, fee), Text carries the provider address.
type SetConfigMessage struct {
	Caller       types.Address
	Field        types.ConfigField
	Value        uint64
	Text         string
	ResponseChan chan error
}

// PauseMessage toggles the participant-facing gate.
type PauseMessage struct {
	Caller       types.Address
	Paused       bool
	ResponseChan chan error
}

// WithdrawMessage sweeps the accumulated fee balance to the administrator.
type WithdrawMessage struct {
	Caller       types.Address
	ResponseChan chan WithdrawResponse
}

// WithdrawResponse reports the amount swept.
type WithdrawResponse struct {
	Amount uint64
	Err    error
}

// ListPoolMessage requests the full catalog. Administrator only.
type ListPoolMessage struct {
	Caller       types.Address
	ResponseChan chan ListPoolResponse
}

// ListPoolResponse carries the catalog copy.
type ListPoolResponse struct {
	Rewards []types.RewardDescriptor
	Err     error
}

// PendingMessage queries a participant's pending reward.
type PendingMessage struct {
	Participant  types.Address
	ResponseChan chan PendingResponse
}

// PendingResponse reports the pending reward, if one exists.
type PendingResponse struct {
	Reward types.RewardDescriptor
	Ok     bool
}

// StatusMessage queries the vault's summary state.
type StatusMessage struct {
	ResponseChan chan Status
}

// Status is the vault's summary state.
type Status struct {
	PoolSize   int
	FeeBalance uint64
	Config     types.VaultConfig
}

// StateMessage requests the current pool catalog.
type StateMessage struct {
	ResponseChan chan []types.RewardDescriptor
}

// StopMessage requests a graceful shutdown.
type StopMessage struct {
	ResponseChan chan struct{}
}

// FlushMessage manually triggers a WAL flush.
type FlushMessage struct {
	ResponseChan chan error
}

// SnapshotMessage manually triggers a snapshot.
type SnapshotMessage struct {
	ResponseChan chan error
}

// GetRequestIDMessage requests the current request ID.
type GetRequestIDMessage struct {
	ResponseChan chan uint64
}

// SetRequestIDMessage sets the request ID, used after recovery.
type SetRequestIDMessage struct {
	ID           uint64
	ResponseChan chan struct{}
}
