package actor

import (
	"context"
	"fmt"
	"sync"

	"github.com/rewardvault/reward-vault-go/internal/ledger"
	"github.com/rewardvault/reward-vault-go/internal/types"
	"github.com/rewardvault/reward-vault-go/internal/walstream"
)

// System manages the lifecycle of the vault actor and provides a client-facing API.
type System struct {
	vaultActor     *VaultActor
	streamingActor *StreamingActor
	cancel         context.CancelFunc
	wg             sync.WaitGroup
	stopOnce       sync.Once
}

// SystemOptional provides optional parameters for creating a new System.
type SystemOptional struct {
	// FlushAfterNDraw batches draw durability. The default of 1 makes every
	// draw durable before it is acknowledged; larger values trade that for
	// throughput.
	FlushAfterNDraw   int
	RequestBufferSize int
	LastRequestID     uint64
	WALStreamer       walstream.WALStreamer
}

// NewSystem creates, starts, and returns a new actor system over the ledger.
func NewSystem(ctx *types.Context, l *ledger.Ledger, opt *SystemOptional) (*System, error) {
	flushN := 1
	if opt != nil && opt.FlushAfterNDraw > 0 {
		flushN = opt.FlushAfterNDraw
	}
	bufSize := 100
	if opt != nil && opt.RequestBufferSize > 0 {
		bufSize = opt.RequestBufferSize
	}
	lastRequestID := uint64(0)
	if opt != nil && opt.LastRequestID > 0 {
		lastRequestID = opt.LastRequestID
	}

	vaultActor := NewVaultActor(ctx, l, bufSize, flushN, lastRequestID)
	if err := vaultActor.Init(); err != nil {
		vaultActor.ctx.WAL.Close()
		return nil, fmt.Errorf("actor initialization failed: %w", err)
	}

	var streamingActor *StreamingActor
	if opt != nil && opt.WALStreamer != nil {
		streamingActor = NewStreamingActor(opt.WALStreamer, bufSize)
		if err := streamingActor.Init(); err != nil {
			return nil, fmt.Errorf("streamingActor initialization failed: %w", err)
		}
		vaultActor.SetStreamChannel(streamingActor.mailbox)
	}

	actorCtx, cancel := context.WithCancel(context.Background())

	sys := &System{
		vaultActor:     vaultActor,
		streamingActor: streamingActor,
		cancel:         cancel,
	}

	sys.wg.Add(2)
	go func() {
		defer sys.wg.Done()
		sys.vaultActor.Receive(actorCtx)
	}()
	go func() {
		defer sys.wg.Done()
		if sys.streamingActor == nil {
			return
		}
		sys.streamingActor.Receive(actorCtx)
	}()

	return sys, nil
}

// Draw sends a draw request for a participant and returns the response channel.
func (s *System) Draw(participant types.Address) <-chan DrawResponse {
	respChan := make(chan DrawResponse, 1)
	s.vaultActor.mailbox <- DrawMessage{Participant: participant, ResponseChan: respChan}
	return respChan
}

// Redeem sends a redeem request for a participant and returns the response channel.
func (s *System) Redeem(participant types.Address) <-chan RedeemResponse {
	respChan := make(chan RedeemResponse, 1)
	s.vaultActor.mailbox <- RedeemMessage{Participant: participant, ResponseChan: respChan}
	return respChan
}

// AddReward appends a single descriptor to the pool. Administrator only.
func (s *System) AddReward(caller types.Address, r types.RewardDescriptor) error {
	return s.AddRewards(caller, []types.RewardDescriptor{r})
}

// AddRewards appends a batch of descriptors to the pool. Administrator only.
func (s *System) AddRewards(caller types.Address, rs []types.RewardDescriptor) error {
	respChan := make(chan error, 1)
	s.vaultActor.mailbox <- AddRewardsMessage{Caller: caller, Rewards: rs, ResponseChan: respChan}
	return <-respChan
}

// RemoveReward removes the descriptor at index. Administrator only.
func (s *System) RemoveReward(caller types.Address, index int) error {
	respChan := make(chan error, 1)
	s.vaultActor.mailbox <- RemoveRewardMessage{Caller: caller, Index: index, ResponseChan: respChan}
	return <-respChan
}

// SetSalt replaces the draw salt. Administrator only.
func (s *System) SetSalt(caller types.Address, salt uint64) error {
	return s.setConfig(caller, types.FieldSalt, salt, "")
}

// SetFee replaces the draw fee. Administrator only.
func (s *System) SetFee(caller types.Address, amount uint64) error {
	return s.setConfig(caller, types.FieldFee, amount, "")
}

// SetProvider replaces the custodial payout address. Administrator only.
func (s *System) SetProvider(caller types.Address, provider types.Address) error {
	return s.setConfig(caller, types.FieldProvider, 0, string(provider))
}

func (s *System) setConfig(caller types.Address, field types.ConfigField, value uint64, text string) error {
	respChan := make(chan error, 1)
	s.vaultActor.mailbox <- SetConfigMessage{Caller: caller, Field: field, Value: value, Text: text, ResponseChan: respChan}
	return <-respChan
}

// Pause gates the participant surface. Administrator only.
func (s *System) Pause(caller types.Address) error {
	respChan := make(chan error, 1)
	s.vaultActor.mailbox <- PauseMessage{Caller: caller, Paused: true, ResponseChan: respChan}
	return <-respChan
}

// Unpause reopens the participant surface. Administrator only.
func (s *System) Unpause(caller types.Address) error {
	respChan := make(chan error, 1)
	s.vaultActor.mailbox <- PauseMessage{Caller: caller, Paused: false, ResponseChan: respChan}
	return <-respChan
}

// Withdraw sweeps the fee balance to the administrator. Administrator only.
func (s *System) Withdraw(caller types.Address) (uint64, error) {
	respChan := make(chan WithdrawResponse, 1)
	s.vaultActor.mailbox <- WithdrawMessage{Caller: caller, ResponseChan: respChan}
	resp := <-respChan
	return resp.Amount, resp.Err
}

// ListPool returns the full catalog. Administrator only.
func (s *System) ListPool(caller types.Address) ([]types.RewardDescriptor, error) {
	respChan := make(chan ListPoolResponse, 1)
	s.vaultActor.mailbox <- ListPoolMessage{Caller: caller, ResponseChan: respChan}
	resp := <-respChan
	return resp.Rewards, resp.Err
}

// PendingRewardOf reports the participant's pending reward, if any.
func (s *System) PendingRewardOf(participant types.Address) (types.RewardDescriptor, bool) {
	respChan := make(chan PendingResponse, 1)
	s.vaultActor.mailbox <- PendingMessage{Participant: participant, ResponseChan: respChan}
	resp := <-respChan
	return resp.Reward, resp.Ok
}

// State returns the current pool catalog.
func (s *System) State() []types.RewardDescriptor {
	respChan := make(chan []types.RewardDescriptor, 1)
	s.vaultActor.mailbox <- StateMessage{ResponseChan: respChan}
	return <-respChan
}

// Status returns the vault summary state.
func (s *System) Status() Status {
	respChan := make(chan Status, 1)
	s.vaultActor.mailbox <- StatusMessage{ResponseChan: respChan}
	return <-respChan
}

// Stop gracefully shuts down the actor system.
func (s *System) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		s.wg.Wait()
	})
}

// Flush manually triggers a WAL flush.
func (s *System) Flush() error {
	respChan := make(chan error, 1)
	s.vaultActor.mailbox <- FlushMessage{ResponseChan: respChan}
	return <-respChan
}

// Snapshot manually triggers a snapshot.
func (s *System) Snapshot() error {
	respChan := make(chan error, 1)
	s.vaultActor.mailbox <- SnapshotMessage{ResponseChan: respChan}
	return <-respChan
}

// GetRequestID returns the current request ID from the actor.
func (s *System) GetRequestID() uint64 {
	respChan := make(chan uint64, 1)
	s.vaultActor.mailbox <- GetRequestIDMessage{ResponseChan: respChan}
	return <-respChan
}

// SetRequestID sets the request ID on the actor.
func (s *System) SetRequestID(id uint64) {
	respChan := make(chan struct{}, 1)
	s.vaultActor.mailbox <- SetRequestIDMessage{ID: id, ResponseChan: respChan}
	<-respChan
}
