package actor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rewardvault/reward-vault-go/internal/ledger"
	"github.com/rewardvault/reward-vault-go/internal/types"
)

// VaultActor encapsulates the vault state machine. It is designed to be run
// in a single goroutine, processing messages from its mailbox; that single
// goroutine is what makes draw, redeem and the administrator operations
// mutually exclusive critical sections.
type VaultActor struct {
	ctx             *types.Context
	ledger          *ledger.Ledger
	mailbox         chan interface{}
	flushAfterNDraw int
	pendingLogs     []types.WalLogEntry
	undoDraws       []undoDraw
	requestID       uint64
	streamChan      chan<- types.WalLogEntry
}

// undoDraw is kept until the draw's WAL entry is flushed so the draw can be
// reverted in full (pool slot, pending entry, fee) if durability fails.
type undoDraw struct {
	participant types.Address
	result      ledger.DrawResult
}

// NewVaultActor creates a new actor instance over an existing ledger.
func NewVaultActor(ctx *types.Context, l *ledger.Ledger, mailboxSize, flushAfterNDraw int, requestID uint64) *VaultActor {
	return &VaultActor{
		ctx:             ctx,
		ledger:          l,
		mailbox:         make(chan interface{}, mailboxSize),
		flushAfterNDraw: flushAfterNDraw,
		pendingLogs:     make([]types.WalLogEntry, 0, flushAfterNDraw*2),
		requestID:       requestID,
	}
}

// SetStreamChannel wires the streaming actor's mailbox. Flushed entries are
// forwarded there without blocking the vault.
func (a *VaultActor) SetStreamChannel(ch chan<- types.WalLogEntry) {
	a.streamChan = ch
}

// Init performs the initial setup for the actor: an empty WAL gets an initial
// snapshot so recovery always has a starting point.
func (a *VaultActor) Init() error {
	size, err := a.ctx.WAL.Size()
	if err != nil {
		return fmt.Errorf("could not determine WAL size: %w", err)
	}

	if size == 0 {
		if logger := a.ctx.Utils.GetLogger(); logger != nil {
			logger.Info("WAL is empty, creating initial snapshot.")
		}
		if err := a.snapshot(); err != nil {
			return fmt.Errorf("failed to create initial snapshot: %w", err)
		}
		return a.flush()
	}

	return nil
}

// Receive starts the actor's message processing loop.
// This method is expected to be called in its own goroutine.
func (a *VaultActor) Receive(ctx context.Context) {
	for {
		select {
		case msg := <-a.mailbox:
			a.handleMessage(msg)
		case <-ctx.Done():
			a.shutdown()
			return
		}
	}
}

func (a *VaultActor) handleMessage(msg interface{}) {
	switch m := msg.(type) {
	case DrawMessage:
		a.handleDraw(m)
	case RedeemMessage:
		a.handleRedeem(m)
	case AddRewardsMessage:
		a.handleAddRewards(m)
	case RemoveRewardMessage:
		a.handleRemoveReward(m)
	case SetConfigMessage:
		a.handleSetConfig(m)
	case PauseMessage:
		a.handlePause(m)
	case WithdrawMessage:
		a.handleWithdraw(m)
	case ListPoolMessage:
		rewards, err := a.ledger.ListPool(m.Caller)
		m.ResponseChan <- ListPoolResponse{Rewards: rewards, Err: err}
	case PendingMessage:
		reward, ok := a.ledger.PendingRewardOf(m.Participant)
		m.ResponseChan <- PendingResponse{Reward: reward, Ok: ok}
	case StatusMessage:
		m.ResponseChan <- Status{
			PoolSize:   a.ledger.PoolSize(),
			FeeBalance: a.ledger.FeeBalance(),
			Config:     a.ledger.Config(),
		}
	case StateMessage:
		m.ResponseChan <- a.ledger.State()
	case StopMessage:
		a.shutdown()
		close(m.ResponseChan)
	case FlushMessage:
		m.ResponseChan <- a.flush()
	case SnapshotMessage:
		err := a.snapshot()
		if err == nil {
			err = a.flush()
		}
		m.ResponseChan <- err
	case GetRequestIDMessage:
		m.ResponseChan <- a.requestID
	case SetRequestIDMessage:
		a.requestID = m.ID
		close(m.ResponseChan)
	}
}

func drawLogError(err error) types.LogError {
	switch {
	case errors.Is(err, types.ErrPaused):
		return types.ErrorPaused
	case errors.Is(err, types.ErrAlreadyPending):
		return types.ErrorAlreadyPending
	case errors.Is(err, types.ErrEmptyPool):
		return types.ErrorPoolEmpty
	case errors.Is(err, types.ErrFeeTransfer):
		return types.ErrorFeeTransfer
	}
	return types.ErrorNone
}

func (a *VaultActor) handleDraw(m DrawMessage) {
	a.requestID++
	reqID := a.requestID

	res, err := a.ledger.Draw(m.Participant)

	logItem := types.WalLogDrawItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeDraw, Error: drawLogError(err)},
		RequestID:       reqID,
		Participant:     m.Participant,
		Success:         err == nil,
	}
	if err == nil {
		logItem.Index = res.Index
		logItem.Reward = res.Reward
		logItem.Fee = res.Fee
		a.undoDraws = append(a.undoDraws, undoDraw{participant: m.Participant, result: res})
	}

	a.ctx.WAL.Log(&logItem)
	a.pendingLogs = append(a.pendingLogs, &logItem)

	var flushErr error
	if len(a.pendingLogs) >= a.flushAfterNDraw {
		flushErr = a.flush()
	}

	resp := DrawResponse{RequestID: reqID, Err: err}
	if err == nil {
		if flushErr != nil {
			// The draw was reverted; nothing was committed.
			resp.Err = flushErr
		} else {
			resp.Reward = res.Reward
		}
	}
	m.ResponseChan <- resp
}

func (a *VaultActor) handleRedeem(m RedeemMessage) {
	a.requestID++
	reqID := a.requestID

	reward, err := a.ledger.Redeem(m.Participant)

	logItem := types.WalLogRedeemItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeRedeem},
		RequestID:       reqID,
		Participant:     m.Participant,
		Success:         err == nil,
	}
	switch {
	case err == nil:
		logItem.Reward = reward
	case errors.Is(err, types.ErrPaused):
		logItem.Error = types.ErrorPaused
	case errors.Is(err, types.ErrNoPendingReward):
		logItem.Error = types.ErrorNoPending
	case errors.Is(err, types.ErrPayoutTransfer):
		logItem.Error = types.ErrorPayoutTransfer
	}

	a.ctx.WAL.Log(&logItem)
	a.pendingLogs = append(a.pendingLogs, &logItem)

	// A successful redeem already dispatched an irreversible payout, so its
	// entry is flushed immediately rather than batched.
	if flushErr := a.flush(); flushErr != nil && err == nil {
		if logger := a.ctx.Utils.GetLogger(); logger != nil {
			logger.Error("redeem payout dispatched but WAL flush failed", "participant", m.Participant, "error", flushErr)
		}
	}

	m.ResponseChan <- RedeemResponse{RequestID: reqID, Reward: reward, Err: err}
}

func (a *VaultActor) handleAddRewards(m AddRewardsMessage) {
	// Staged draws must become durable before the pool changes shape:
	// RevertDraw restores slots by draw-time index, which stops being valid
	// once an admin mutation moves slots around. A failed flush aborts the
	// admin operation.
	if err := a.flush(); err != nil {
		m.ResponseChan <- err
		return
	}

	if err := a.ledger.AddRewards(m.Caller, m.Rewards); err != nil {
		m.ResponseChan <- err
		return
	}

	for _, r := range m.Rewards {
		logItem := &types.WalLogAddItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeAddReward},
			Reward:          r,
		}
		a.ctx.WAL.Log(logItem)
		a.pendingLogs = append(a.pendingLogs, logItem)
	}

	if err := a.flush(); err != nil {
		// The batch never became durable; take it back out.
		for range m.Rewards {
			a.ledger.ApplyRemoveLog(a.ledger.PoolSize() - 1)
		}
		m.ResponseChan <- err
		return
	}
	m.ResponseChan <- nil
}

func (a *VaultActor) handleRemoveReward(m RemoveRewardMessage) {
	// Same ordering rule as handleAddRewards: staged draws flush first so
	// their revert indexes stay valid.
	if err := a.flush(); err != nil {
		m.ResponseChan <- err
		return
	}

	removed, err := a.ledger.RemoveReward(m.Caller, m.Index)
	if err != nil {
		m.ResponseChan <- err
		return
	}

	logItem := &types.WalLogRemoveItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeRemoveReward},
		Index:           m.Index,
		Reward:          removed,
	}
	a.ctx.WAL.Log(logItem)
	a.pendingLogs = append(a.pendingLogs, logItem)

	if err := a.flush(); err != nil {
		a.ledger.ApplyAddLog(removed)
		m.ResponseChan <- err
		return
	}
	m.ResponseChan <- nil
}

func (a *VaultActor) handleSetConfig(m SetConfigMessage) {
	prev := a.ledger.Config()

	var err error
	switch m.Field {
	case types.FieldSalt:
		err = a.ledger.SetSalt(m.Caller, m.Value)
	case types.FieldFee:
		err = a.ledger.SetFee(m.Caller, m.Value)
	case types.FieldProvider:
		err = a.ledger.SetProvider(m.Caller, types.Address(m.Text))
	default:
		err = fmt.Errorf("unknown configuration field: %s", m.Field)
	}
	if err != nil {
		m.ResponseChan <- err
		return
	}

	logItem := &types.WalLogSetConfigItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeSetConfig},
		Field:           m.Field,
		Value:           m.Value,
		Text:            m.Text,
	}
	a.ctx.WAL.Log(logItem)
	a.pendingLogs = append(a.pendingLogs, logItem)

	if flushErr := a.flush(); flushErr != nil {
		a.ledger.ApplySetConfigLog(types.FieldSalt, prev.Salt, "")
		a.ledger.ApplySetConfigLog(types.FieldFee, prev.FeeAmount, "")
		a.ledger.ApplySetConfigLog(types.FieldProvider, 0, string(prev.Provider))
		m.ResponseChan <- flushErr
		return
	}
	m.ResponseChan <- nil
}

func (a *VaultActor) handlePause(m PauseMessage) {
	var err error
	if m.Paused {
		err = a.ledger.Pause(m.Caller)
	} else {
		err = a.ledger.Unpause(m.Caller)
	}
	if err != nil {
		m.ResponseChan <- err
		return
	}

	logItem := &types.WalLogPauseItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypePause},
		Paused:          m.Paused,
	}
	a.ctx.WAL.Log(logItem)
	a.pendingLogs = append(a.pendingLogs, logItem)

	if flushErr := a.flush(); flushErr != nil {
		a.ledger.ApplyPauseLog(!m.Paused)
		m.ResponseChan <- flushErr
		return
	}
	m.ResponseChan <- nil
}

func (a *VaultActor) handleWithdraw(m WithdrawMessage) {
	amount, err := a.ledger.Withdraw(m.Caller)
	if err != nil || amount == 0 {
		m.ResponseChan <- WithdrawResponse{Amount: amount, Err: err}
		return
	}

	logItem := &types.WalLogWithdrawItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeWithdraw},
		Amount:          amount,
	}
	a.ctx.WAL.Log(logItem)
	a.pendingLogs = append(a.pendingLogs, logItem)

	// Like redeem, the sweep already moved tokens; flush immediately and keep
	// the ledger state either way.
	if flushErr := a.flush(); flushErr != nil {
		if logger := a.ctx.Utils.GetLogger(); logger != nil {
			logger.Error("withdraw swept but WAL flush failed", "amount", amount, "error", flushErr)
		}
	}
	m.ResponseChan <- WithdrawResponse{Amount: amount}
}

func (a *VaultActor) flush() error {
	if len(a.pendingLogs) == 0 {
		return nil
	}

	flushErr := a.ctx.WAL.Flush()

	if flushErr != nil {
		if flushErr == types.ErrWALFull {
			return a.handleWALFull()
		}

		// Durability failed: undo every draw staged since the last flush, in
		// reverse order so pool restores land on the right slots.
		for i := len(a.undoDraws) - 1; i >= 0; i-- {
			u := a.undoDraws[i]
			a.ledger.RevertDraw(u.participant, u.result)
		}
		a.undoDraws = a.undoDraws[:0]
		a.pendingLogs = a.pendingLogs[:0]
		a.ctx.WAL.Reset()
		if logger := a.ctx.Utils.GetLogger(); logger != nil {
			logger.Error("[Actor] WAL flush failed, reverting draws.", "error", flushErr)
		}
		return flushErr
	}

	a.streamEntries(a.pendingLogs)

	if logger := a.ctx.Utils.GetLogger(); logger != nil {
		logger.Debug(fmt.Sprintf("[Actor] WAL flush and commit - %d logs", len(a.pendingLogs)))
	}
	a.undoDraws = a.undoDraws[:0]
	a.pendingLogs = a.pendingLogs[:0]
	return nil
}

// handleWALFull rotates to a fresh WAL file and snapshots the current ledger
// state into it. The ledger has already applied every staged mutation, so the
// snapshot subsumes the entries that no longer fit in the old file.
func (a *VaultActor) handleWALFull() error {
	if logger := a.ctx.Utils.GetLogger(); logger != nil {
		logger.Info("WAL is full. Rotating and snapshotting.")
	}

	a.ctx.WAL.Reset()
	a.pendingLogs = a.pendingLogs[:0]
	a.undoDraws = a.undoDraws[:0]

	rotatedPath := a.ctx.Utils.GenRotatedWALPath()
	if rotatedPath != nil {
		if err := a.ctx.WAL.Rotate(*rotatedPath); err != nil {
			if logger := a.ctx.Utils.GetLogger(); logger != nil {
				logger.Error("Failed to rotate WAL.", "error", err)
			}
			return err
		}
	}

	if err := a.snapshot(); err != nil {
		return err
	}
	if err := a.ctx.WAL.Flush(); err != nil {
		if logger := a.ctx.Utils.GetLogger(); logger != nil {
			logger.Error("CRITICAL: could not flush snapshot to new WAL.", "error", err)
		}
		return err
	}
	a.pendingLogs = a.pendingLogs[:0]
	return nil
}

func (a *VaultActor) streamEntries(entries []types.WalLogEntry) {
	if a.streamChan == nil {
		return
	}
	for _, entry := range entries {
		select {
		case a.streamChan <- entry:
		default:
			// Never block the vault on a slow replica.
		}
	}
}

func (a *VaultActor) snapshot() error {
	snapshotPath := a.ctx.Utils.GenSnapshotPath()
	if snapshotPath == nil {
		return nil // Snapshotting is disabled
	}

	if logger := a.ctx.Utils.GetLogger(); logger != nil {
		logger.Info("Creating snapshot.", "path", *snapshotPath)
	}

	snap := a.ledger.CreateSnapshot(a.requestID)

	file, err := os.Create(*snapshotPath)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	if err := enc.Encode(snap); err != nil {
		return err
	}

	logItem := &types.WalLogSnapshotItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeSnapshot},
		Path:            *snapshotPath,
	}
	a.ctx.WAL.Log(logItem)
	a.pendingLogs = append(a.pendingLogs, logItem)
	return nil
}

func (a *VaultActor) shutdown() {
	if logger := a.ctx.Utils.GetLogger(); logger != nil {
		logger.Debug("[Actor] Shutdown")
	}

	// Drain mailbox and cancel pending requests
	close(a.mailbox)
	for msg := range a.mailbox {
		switch m := msg.(type) {
		case DrawMessage:
			m.ResponseChan <- DrawResponse{Err: types.ErrShuttingDown}
		case RedeemMessage:
			m.ResponseChan <- RedeemResponse{Err: types.ErrShuttingDown}
		case AddRewardsMessage:
			m.ResponseChan <- types.ErrShuttingDown
		case RemoveRewardMessage:
			m.ResponseChan <- types.ErrShuttingDown
		case SetConfigMessage:
			m.ResponseChan <- types.ErrShuttingDown
		case PauseMessage:
			m.ResponseChan <- types.ErrShuttingDown
		case WithdrawMessage:
			m.ResponseChan <- WithdrawResponse{Err: types.ErrShuttingDown}
		}
	}

	a.flush()
	a.ctx.WAL.Close()
}
