// Package ledger implements the allocation state machine: per-participant
// pending rewards, the draw/redeem lifecycle, fee intake and payout dispatch.
package ledger

import (
	"fmt"

	"github.com/rewardvault/reward-vault-go/internal/entropy"
	"github.com/rewardvault/reward-vault-go/internal/rewardpool"
	"github.com/rewardvault/reward-vault-go/internal/types"
)

// Collaborators are the external capabilities the ledger dispatches through.
// FeeToken doubles as the payout channel for fungible rewards.
type Collaborators struct {
	Vault       types.Address
	FeeToken    types.FungibleToken
	CollectionA types.NonFungibleToken
	CollectionB types.NonFungibleToken
	Entropy     entropy.Source
}

// Ledger owns the reward pool, the pending-reward map and the vault
// configuration. Every participant is in one of two states: idle (absent from
// the pending map) or pending (exactly one descriptor mapped). The map is the
// source of truth; there is no zero-value sentinel.
//
// Ledger is not safe for concurrent use: the actor goroutine serializes all
// calls, which is what gives draw and redeem their transactional semantics.
type Ledger struct {
	pool       *rewardpool.Pool
	pending    map[types.Address]types.RewardDescriptor
	config     types.VaultConfig
	feeBalance uint64
	collab     Collaborators
}

// DrawResult describes a committed draw. Actors keep it around until the WAL
// flush succeeds so the draw can be reverted exactly.
type DrawResult struct {
	Index  int
	Reward types.RewardDescriptor
	Fee    uint64
}

// New creates a ledger over a copy of catalog. A nil Entropy source falls
// back to the clock-based default.
func New(cfg types.VaultConfig, catalog []types.RewardDescriptor, collab Collaborators) *Ledger {
	if collab.Entropy == nil {
		collab.Entropy = entropy.NewClockSource()
	}
	return &Ledger{
		pool:    rewardpool.NewPool(catalog),
		pending: make(map[types.Address]types.RewardDescriptor),
		config:  cfg,
		collab:  collab,
	}
}

// Draw runs the participant draw transaction: paused gate, single-pending
// gate, pool check, index derivation, fee intake, then the pool removal and
// pending assignment. The fee transfer happens before any state mutation so a
// declined fee leaves the vault untouched.
func (l *Ledger) Draw(participant types.Address) (DrawResult, error) {
	if l.config.Paused {
		return DrawResult{}, types.ErrPaused
	}
	if _, ok := l.pending[participant]; ok {
		return DrawResult{}, types.ErrAlreadyPending
	}
	size := l.pool.Size()
	if size == 0 {
		return DrawResult{}, types.ErrEmptyPool
	}

	index, err := entropy.DrawIndex(l.collab.Entropy.Sample(), l.config.Salt, size)
	if err != nil {
		return DrawResult{}, err
	}

	fee := l.config.FeeAmount
	if fee > 0 {
		if err := l.collab.FeeToken.TransferFrom(participant, l.collab.Vault, fee); err != nil {
			return DrawResult{}, fmt.Errorf("%w: %v", types.ErrFeeTransfer, err)
		}
	}

	reward, err := l.pool.RemoveAt(index)
	if err != nil {
		// Index was derived against the current size; reaching here means a
		// bug, not a caller error. Refund and surface it. The refund cannot
		// fail: the vault holds the fee it just collected, and the bank moves
		// the operator's own funds without an allowance check.
		if fee > 0 {
			l.collab.FeeToken.TransferFrom(l.collab.Vault, participant, fee)
		}
		return DrawResult{}, err
	}

	l.pending[participant] = reward
	l.feeBalance += fee
	return DrawResult{Index: index, Reward: reward, Fee: fee}, nil
}

// RevertDraw undoes a committed draw that could not be made durable: the pool
// slot is restored in place, the pending entry cleared and the fee refunded.
// The refund draws on the fee the vault collected for this draw, so it cannot
// fail.
func (l *Ledger) RevertDraw(participant types.Address, res DrawResult) {
	l.pool.Restore(res.Index, res.Reward)
	delete(l.pending, participant)
	l.feeBalance -= res.Fee
	if res.Fee > 0 {
		l.collab.FeeToken.TransferFrom(l.collab.Vault, participant, res.Fee)
	}
}

// Redeem clears the participant's pending reward and dispatches the payout.
// The pending entry is cleared before the transfer so a reentrant or
// concurrent redeem observes the idle state; if the payout collaborator
// declines, the entry is restored and no net state change remains.
func (l *Ledger) Redeem(participant types.Address) (types.RewardDescriptor, error) {
	if l.config.Paused {
		return types.RewardDescriptor{}, types.ErrPaused
	}
	reward, ok := l.pending[participant]
	if !ok {
		return types.RewardDescriptor{}, types.ErrNoPendingReward
	}

	delete(l.pending, participant)
	if err := l.payout(reward, participant); err != nil {
		l.pending[participant] = reward
		return types.RewardDescriptor{}, fmt.Errorf("%w: %v", types.ErrPayoutTransfer, err)
	}
	return reward, nil
}

func (l *Ledger) payout(reward types.RewardDescriptor, to types.Address) error {
	provider := l.config.Provider
	switch reward.Kind {
	case types.RewardFungible:
		return l.collab.FeeToken.TransferFrom(provider, to, reward.AmountOrID)
	case types.RewardNonFungibleA:
		return l.collab.CollectionA.TransferFrom(provider, to, reward.AmountOrID)
	case types.RewardNonFungibleB:
		return l.collab.CollectionB.TransferFrom(provider, to, reward.AmountOrID)
	}
	return types.ErrInvalidKind
}

func (l *Ledger) requireAdmin(caller types.Address) error {
	if caller != l.config.Admin {
		return types.ErrUnauthorized
	}
	return nil
}

// AddReward appends a descriptor to the pool. Administrator only; callable
// while paused.
func (l *Ledger) AddReward(caller types.Address, r types.RewardDescriptor) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if !r.Kind.Valid() {
		return types.ErrInvalidKind
	}
	l.pool.Append(r)
	return nil
}

// AddRewards appends a batch. The batch is validated up front so a malformed
// descriptor rejects the whole call with no partial append.
func (l *Ledger) AddRewards(caller types.Address, rs []types.RewardDescriptor) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	for _, r := range rs {
		if !r.Kind.Valid() {
			return types.ErrInvalidKind
		}
	}
	for _, r := range rs {
		l.pool.Append(r)
	}
	return nil
}

// RemoveReward deletes the descriptor at index with the same swap-to-last
// compaction the draw path uses.
func (l *Ledger) RemoveReward(caller types.Address, index int) (types.RewardDescriptor, error) {
	if err := l.requireAdmin(caller); err != nil {
		return types.RewardDescriptor{}, err
	}
	return l.pool.RemoveAt(index)
}

// SetSalt replaces the draw salt, effective on the next draw.
func (l *Ledger) SetSalt(caller types.Address, salt uint64) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	l.config.Salt = salt
	return nil
}

// SetProvider replaces the custodial payout address. Already-pending rewards
// redeem against the provider configured at redeem time, not at draw time.
func (l *Ledger) SetProvider(caller types.Address, provider types.Address) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	l.config.Provider = provider
	return nil
}

// SetFee replaces the draw fee, effective on the next draw.
func (l *Ledger) SetFee(caller types.Address, amount uint64) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	l.config.FeeAmount = amount
	return nil
}

// Pause gates Draw and Redeem. Administrator operations stay callable.
func (l *Ledger) Pause(caller types.Address) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	l.config.Paused = true
	return nil
}

// Unpause reopens the participant surface.
func (l *Ledger) Unpause(caller types.Address) error {
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	l.config.Paused = false
	return nil
}

// Withdraw sweeps the whole accumulated fee balance to the administrator and
// returns the amount moved. A zero balance sweeps nothing and succeeds.
func (l *Ledger) Withdraw(caller types.Address) (uint64, error) {
	if err := l.requireAdmin(caller); err != nil {
		return 0, err
	}
	amount := l.feeBalance
	if amount == 0 {
		return 0, nil
	}
	if err := l.collab.FeeToken.TransferFrom(l.collab.Vault, l.config.Admin, amount); err != nil {
		return 0, fmt.Errorf("%w: %v", types.ErrFeeTransfer, err)
	}
	l.feeBalance = 0
	return amount, nil
}

// ListPool returns a copy of the catalog. Administrator only.
func (l *Ledger) ListPool(caller types.Address) ([]types.RewardDescriptor, error) {
	if err := l.requireAdmin(caller); err != nil {
		return nil, err
	}
	return l.pool.State(), nil
}

// PendingRewardOf reports the participant's pending reward, if any.
func (l *Ledger) PendingRewardOf(participant types.Address) (types.RewardDescriptor, bool) {
	r, ok := l.pending[participant]
	return r, ok
}

// PoolSize returns the number of unclaimed rewards.
func (l *Ledger) PoolSize() int {
	return l.pool.Size()
}

// FeeBalance returns the accumulated, unswept fee amount.
func (l *Ledger) FeeBalance() uint64 {
	return l.feeBalance
}

// Config returns the current configuration record.
func (l *Ledger) Config() types.VaultConfig {
	return l.config
}

// State returns a copy of the pool catalog for read-only consumers.
func (l *Ledger) State() []types.RewardDescriptor {
	return l.pool.State()
}

// CreateSnapshot captures the full durable state.
func (l *Ledger) CreateSnapshot(lastRequestID uint64) *types.VaultSnapshot {
	pending := make(map[types.Address]types.RewardDescriptor, len(l.pending))
	for k, v := range l.pending {
		pending[k] = v
	}
	return &types.VaultSnapshot{
		Catalog:       l.pool.State(),
		Pending:       pending,
		Config:        l.config,
		FeeBalance:    l.feeBalance,
		LastRequestID: lastRequestID,
	}
}

// LoadSnapshot replaces the ledger state with snap.
func (l *Ledger) LoadSnapshot(snap *types.VaultSnapshot) {
	l.pool.LoadCatalog(snap.Catalog)
	l.pending = make(map[types.Address]types.RewardDescriptor, len(snap.Pending))
	for k, v := range snap.Pending {
		l.pending[k] = v
	}
	l.config = snap.Config
	l.feeBalance = snap.FeeBalance
}

// The Apply* methods re-execute logged mutations during WAL replay. They touch
// only vault-local state; token movements already happened before the entry
// was flushed and are the collaborators' concern.

func (l *Ledger) ApplyDrawLog(participant types.Address, index int, reward types.RewardDescriptor, fee uint64) {
	if _, err := l.pool.RemoveAt(index); err != nil {
		return
	}
	l.pending[participant] = reward
	l.feeBalance += fee
}

func (l *Ledger) ApplyRedeemLog(participant types.Address) {
	delete(l.pending, participant)
}

func (l *Ledger) ApplyAddLog(reward types.RewardDescriptor) {
	l.pool.Append(reward)
}

func (l *Ledger) ApplyRemoveLog(index int) {
	l.pool.RemoveAt(index)
}

func (l *Ledger) ApplySetConfigLog(field types.ConfigField, value uint64, text string) {
	switch field {
	case types.FieldSalt:
		l.config.Salt = value
	case types.FieldFee:
		l.config.FeeAmount = value
	case types.FieldProvider:
		l.config.Provider = types.Address(text)
	}
}

func (l *Ledger) ApplyPauseLog(paused bool) {
	l.config.Paused = paused
}

func (l *Ledger) ApplyWithdrawLog(amount uint64) {
	if amount > l.feeBalance {
		l.feeBalance = 0
		return
	}
	l.feeBalance -= amount
}
