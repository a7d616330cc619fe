package replay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewardvault/reward-vault-go/internal/ledger"
	"github.com/rewardvault/reward-vault-go/internal/replay"
	"github.com/rewardvault/reward-vault-go/internal/types"
)

func newReplayLedger(values ...uint64) *ledger.Ledger {
	catalog := make([]types.RewardDescriptor, len(values))
	for i, v := range values {
		catalog[i] = types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: v}
	}
	return ledger.New(types.VaultConfig{Admin: "admin"}, catalog, ledger.Collaborators{})
}

func TestReplaySuccessfulDraw(t *testing.T) {
	l := newReplayLedger(100, 200, 300)

	replay.ApplyLog(l, &types.WalLogDrawItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeDraw},
		RequestID:       1,
		Participant:     "alice",
		Index:           1,
		Reward:          types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 200},
		Fee:             10,
		Success:         true,
	})

	// Swap-to-last compaction is reproduced exactly.
	assert.Equal(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
		{Kind: types.RewardFungible, AmountOrID: 300},
	}, l.State())

	reward, ok := l.PendingRewardOf("alice")
	require.True(t, ok)
	assert.Equal(t, uint64(200), reward.AmountOrID)
	assert.Equal(t, uint64(10), l.FeeBalance())
}

func TestReplayFailedDrawIsNoOp(t *testing.T) {
	l := newReplayLedger(100)

	replay.ApplyLog(l, &types.WalLogDrawItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeDraw, Error: types.ErrorPoolEmpty},
		RequestID:       1,
		Participant:     "alice",
		Success:         false,
	})

	assert.Equal(t, 1, l.PoolSize())
	_, ok := l.PendingRewardOf("alice")
	assert.False(t, ok)
}

func TestReplayRedeemClearsPending(t *testing.T) {
	l := newReplayLedger(100)
	l.ApplyDrawLog("alice", 0, types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 100}, 0)

	replay.ApplyLog(l, &types.WalLogRedeemItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeRedeem},
		RequestID:       2,
		Participant:     "alice",
		Success:         true,
	})

	_, ok := l.PendingRewardOf("alice")
	assert.False(t, ok)
}

func TestReplayAdminEntries(t *testing.T) {
	l := newReplayLedger()

	logs := []types.WalLogEntry{
		&types.WalLogAddItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeAddReward},
			Reward:          types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 100},
		},
		&types.WalLogAddItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeAddReward},
			Reward:          types.RewardDescriptor{Kind: types.RewardNonFungibleA, AmountOrID: 7},
		},
		&types.WalLogRemoveItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeRemoveReward},
			Index:           0,
		},
		&types.WalLogSetConfigItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeSetConfig},
			Field:           types.FieldSalt,
			Value:           77,
		},
		&types.WalLogSetConfigItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeSetConfig},
			Field:           types.FieldProvider,
			Text:            "provider-2",
		},
		&types.WalLogPauseItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypePause},
			Paused:          true,
		},
	}
	replay.ReplayLogs(l, logs)

	assert.Equal(t, []types.RewardDescriptor{
		{Kind: types.RewardNonFungibleA, AmountOrID: 7},
	}, l.State())
	assert.Equal(t, uint64(77), l.Config().Salt)
	assert.Equal(t, types.Address("provider-2"), l.Config().Provider)
	assert.True(t, l.Config().Paused)
}

func TestReplayWithdraw(t *testing.T) {
	l := newReplayLedger(100)
	l.ApplyDrawLog("alice", 0, types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 100}, 30)

	replay.ApplyLog(l, &types.WalLogWithdrawItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeWithdraw},
		Amount:          30,
	})

	assert.Equal(t, uint64(0), l.FeeBalance())
}

func TestReplayIgnoresMarkers(t *testing.T) {
	l := newReplayLedger(100)

	replay.ReplayLogs(l, []types.WalLogEntry{
		&types.WalLogSnapshotItem{WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeSnapshot}, Path: "x"},
		&types.WalLogRotateItem{WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeRotate}},
	})

	assert.Equal(t, 1, l.PoolSize())
}
