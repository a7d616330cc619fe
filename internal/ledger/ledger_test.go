package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewardvault/reward-vault-go/internal/entropy"
	"github.com/rewardvault/reward-vault-go/internal/ledger"
	"github.com/rewardvault/reward-vault-go/internal/token"
	"github.com/rewardvault/reward-vault-go/internal/types"
)

type fixture struct {
	ledger      *ledger.Ledger
	bank        *token.Bank
	collectionA *token.Registry
	collectionB *token.Registry
}

func newFixture(t *testing.T, catalog []types.RewardDescriptor, cfg types.VaultConfig) *fixture {
	t.Helper()

	bank := token.NewBank("vault")
	collectionA := token.NewRegistry("vault")
	collectionB := token.NewRegistry("vault")

	bank.Mint("alice", 1000)
	bank.Approve("alice", 1000)
	bank.Mint("bob", 1000)
	bank.Approve("bob", 1000)
	bank.Mint("provider", 100000)
	bank.Approve("provider", 100000)
	collectionA.SetApprovalForAll("provider", true)
	collectionB.SetApprovalForAll("provider", true)

	for _, r := range catalog {
		switch r.Kind {
		case types.RewardNonFungibleA:
			collectionA.Mint("provider", r.AmountOrID)
		case types.RewardNonFungibleB:
			collectionB.Mint("provider", r.AmountOrID)
		}
	}

	l := ledger.New(cfg, catalog, ledger.Collaborators{
		Vault:       "vault",
		FeeToken:    bank,
		CollectionA: collectionA,
		CollectionB: collectionB,
		Entropy:     &entropy.FixedSource{Value: entropy.Seed{Timestamp: 1700000000, Difficulty: 1}},
	})

	return &fixture{ledger: l, bank: bank, collectionA: collectionA, collectionB: collectionB}
}

func defaultConfig() types.VaultConfig {
	return types.VaultConfig{
		Admin:     "admin",
		Provider:  "provider",
		FeeAmount: 10,
		Salt:      42,
	}
}

func TestDrawChargesFeeAndSetsPending(t *testing.T) {
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
	}, defaultConfig())

	res, err := f.ledger.Draw("alice")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 100}, res.Reward)
	assert.Equal(t, uint64(10), res.Fee)

	assert.Equal(t, uint64(990), f.bank.BalanceOf("alice"))
	assert.Equal(t, uint64(10), f.bank.BalanceOf("vault"))
	assert.Equal(t, uint64(10), f.ledger.FeeBalance())
	assert.Equal(t, 0, f.ledger.PoolSize())

	reward, ok := f.ledger.PendingRewardOf("alice")
	require.True(t, ok)
	assert.Equal(t, res.Reward, reward)
}

func TestDrawAlreadyPendingLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
		{Kind: types.RewardFungible, AmountOrID: 200},
	}, defaultConfig())

	_, err := f.ledger.Draw("alice")
	require.NoError(t, err)

	balance := f.bank.BalanceOf("alice")
	size := f.ledger.PoolSize()
	fees := f.ledger.FeeBalance()

	_, err = f.ledger.Draw("alice")
	assert.ErrorIs(t, err, types.ErrAlreadyPending)
	assert.Equal(t, balance, f.bank.BalanceOf("alice"))
	assert.Equal(t, size, f.ledger.PoolSize())
	assert.Equal(t, fees, f.ledger.FeeBalance())
}

func TestDrawEmptyPool(t *testing.T) {
	f := newFixture(t, nil, defaultConfig())

	_, err := f.ledger.Draw("alice")
	assert.ErrorIs(t, err, types.ErrEmptyPool)
	assert.Equal(t, uint64(1000), f.bank.BalanceOf("alice"))
}

func TestDrawPaused(t *testing.T) {
	cfg := defaultConfig()
	cfg.Paused = true
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
	}, cfg)

	_, err := f.ledger.Draw("alice")
	assert.ErrorIs(t, err, types.ErrPaused)
	assert.Equal(t, uint64(1000), f.bank.BalanceOf("alice"))
	assert.Equal(t, 1, f.ledger.PoolSize())
}

func TestDrawFeeDeclinedLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
	}, defaultConfig())

	_, err := f.ledger.Draw("pauper")
	assert.ErrorIs(t, err, types.ErrFeeTransfer)
	assert.Equal(t, 1, f.ledger.PoolSize())
	assert.Equal(t, uint64(0), f.ledger.FeeBalance())

	_, ok := f.ledger.PendingRewardOf("pauper")
	assert.False(t, ok)
}

func TestDrawZeroFeeSkipsTransfer(t *testing.T) {
	cfg := defaultConfig()
	cfg.FeeAmount = 0
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
	}, cfg)

	// Even an unfunded participant can draw when the fee is zero.
	_, err := f.ledger.Draw("pauper")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), f.ledger.FeeBalance())
}

func TestRevertDrawRestoresEverything(t *testing.T) {
	catalog := []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
		{Kind: types.RewardFungible, AmountOrID: 200},
		{Kind: types.RewardFungible, AmountOrID: 300},
	}
	f := newFixture(t, catalog, defaultConfig())

	res, err := f.ledger.Draw("alice")
	require.NoError(t, err)

	f.ledger.RevertDraw("alice", res)

	assert.Equal(t, catalog, f.ledger.State())
	assert.Equal(t, uint64(1000), f.bank.BalanceOf("alice"))
	assert.Equal(t, uint64(0), f.ledger.FeeBalance())
	_, ok := f.ledger.PendingRewardOf("alice")
	assert.False(t, ok)
}

func TestRedeemFungiblePayout(t *testing.T) {
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 500},
	}, defaultConfig())

	_, err := f.ledger.Draw("alice")
	require.NoError(t, err)

	reward, err := f.ledger.Redeem("alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(500), reward.AmountOrID)

	// 1000 - 10 fee + 500 payout
	assert.Equal(t, uint64(1490), f.bank.BalanceOf("alice"))
	_, ok := f.ledger.PendingRewardOf("alice")
	assert.False(t, ok)
}

func TestRedeemNonFungiblePayout(t *testing.T) {
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardNonFungibleA, AmountOrID: 7},
	}, defaultConfig())

	_, err := f.ledger.Draw("alice")
	require.NoError(t, err)

	_, err = f.ledger.Redeem("alice")
	require.NoError(t, err)

	owner, ok := f.collectionA.OwnerOf(7)
	require.True(t, ok)
	assert.Equal(t, types.Address("alice"), owner)
}

func TestRedeemNoPending(t *testing.T) {
	f := newFixture(t, nil, defaultConfig())

	_, err := f.ledger.Redeem("alice")
	assert.ErrorIs(t, err, types.ErrNoPendingReward)
}

func TestRedeemIsNotIdempotent(t *testing.T) {
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 500},
	}, defaultConfig())

	_, err := f.ledger.Draw("alice")
	require.NoError(t, err)
	_, err = f.ledger.Redeem("alice")
	require.NoError(t, err)

	_, err = f.ledger.Redeem("alice")
	assert.ErrorIs(t, err, types.ErrNoPendingReward)
	assert.Equal(t, uint64(1490), f.bank.BalanceOf("alice"))
}

func TestRedeemPaused(t *testing.T) {
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 500},
	}, defaultConfig())

	_, err := f.ledger.Draw("alice")
	require.NoError(t, err)

	require.NoError(t, f.ledger.Pause("admin"))
	_, err = f.ledger.Redeem("alice")
	assert.ErrorIs(t, err, types.ErrPaused)

	// The pending reward survives the pause.
	require.NoError(t, f.ledger.Unpause("admin"))
	_, err = f.ledger.Redeem("alice")
	assert.NoError(t, err)
}

func TestRedeemPayoutDeclinedRestoresPending(t *testing.T) {
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardNonFungibleB, AmountOrID: 9},
	}, defaultConfig())

	_, err := f.ledger.Draw("alice")
	require.NoError(t, err)

	// Revoke the provider's approval so the payout collaborator declines.
	f.collectionB.SetApprovalForAll("provider", false)

	_, err = f.ledger.Redeem("alice")
	assert.ErrorIs(t, err, types.ErrPayoutTransfer)

	reward, ok := f.ledger.PendingRewardOf("alice")
	require.True(t, ok)
	assert.Equal(t, uint64(9), reward.AmountOrID)

	// Approval restored, the redeem goes through.
	f.collectionB.SetApprovalForAll("provider", true)
	_, err = f.ledger.Redeem("alice")
	assert.NoError(t, err)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	f := newFixture(t, nil, defaultConfig())

	r := types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 100}
	require.NoError(t, f.ledger.AddReward("admin", r))
	require.Equal(t, 1, f.ledger.PoolSize())

	removed, err := f.ledger.RemoveReward("admin", 0)
	require.NoError(t, err)
	assert.Equal(t, r, removed)
	assert.Equal(t, 0, f.ledger.PoolSize())
}

func TestAddRewardsAllOrNothing(t *testing.T) {
	f := newFixture(t, nil, defaultConfig())

	err := f.ledger.AddRewards("admin", []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
		{Kind: types.RewardKind(99), AmountOrID: 1},
	})
	assert.ErrorIs(t, err, types.ErrInvalidKind)
	assert.Equal(t, 0, f.ledger.PoolSize())
}

func TestAddRewardZeroValueIsLegal(t *testing.T) {
	f := newFixture(t, nil, defaultConfig())

	require.NoError(t, f.ledger.AddReward("admin", types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 0}))
	assert.Equal(t, 1, f.ledger.PoolSize())
}

func TestRemoveRewardOutOfRange(t *testing.T) {
	f := newFixture(t, nil, defaultConfig())

	_, err := f.ledger.RemoveReward("admin", 0)
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
}

func TestAdminOpsRejectNonAdmin(t *testing.T) {
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
	}, defaultConfig())

	r := types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 1}
	assert.ErrorIs(t, f.ledger.AddReward("mallory", r), types.ErrUnauthorized)
	_, err := f.ledger.RemoveReward("mallory", 0)
	assert.ErrorIs(t, err, types.ErrUnauthorized)
	assert.ErrorIs(t, f.ledger.SetSalt("mallory", 1), types.ErrUnauthorized)
	assert.ErrorIs(t, f.ledger.SetFee("mallory", 1), types.ErrUnauthorized)
	assert.ErrorIs(t, f.ledger.SetProvider("mallory", "x"), types.ErrUnauthorized)
	assert.ErrorIs(t, f.ledger.Pause("mallory"), types.ErrUnauthorized)
	assert.ErrorIs(t, f.ledger.Unpause("mallory"), types.ErrUnauthorized)
	_, err = f.ledger.Withdraw("mallory")
	assert.ErrorIs(t, err, types.ErrUnauthorized)
	_, err = f.ledger.ListPool("mallory")
	assert.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestAdminOpsCallableWhilePaused(t *testing.T) {
	f := newFixture(t, nil, defaultConfig())

	require.NoError(t, f.ledger.Pause("admin"))
	assert.NoError(t, f.ledger.AddReward("admin", types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 1}))
	assert.NoError(t, f.ledger.SetSalt("admin", 7))
	assert.NoError(t, f.ledger.SetFee("admin", 3))
	_, err := f.ledger.Withdraw("admin")
	assert.NoError(t, err)
}

func TestSetConfigTakesEffectOnNextDraw(t *testing.T) {
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
	}, defaultConfig())

	require.NoError(t, f.ledger.SetFee("admin", 25))

	_, err := f.ledger.Draw("alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(975), f.bank.BalanceOf("alice"))
	assert.Equal(t, uint64(25), f.ledger.FeeBalance())
}

func TestWithdrawSweepsFees(t *testing.T) {
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
		{Kind: types.RewardFungible, AmountOrID: 200},
	}, defaultConfig())

	_, err := f.ledger.Draw("alice")
	require.NoError(t, err)
	_, err = f.ledger.Draw("bob")
	require.NoError(t, err)

	amount, err := f.ledger.Withdraw("admin")
	require.NoError(t, err)
	assert.Equal(t, uint64(20), amount)
	assert.Equal(t, uint64(20), f.bank.BalanceOf("admin"))
	assert.Equal(t, uint64(0), f.ledger.FeeBalance())
}

func TestWithdrawZeroBalanceIsNoOp(t *testing.T) {
	f := newFixture(t, nil, defaultConfig())

	amount, err := f.ledger.Withdraw("admin")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), amount)
	assert.Equal(t, uint64(0), f.bank.BalanceOf("admin"))
}

func TestSnapshotRoundTrip(t *testing.T) {
	f := newFixture(t, []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
		{Kind: types.RewardFungible, AmountOrID: 200},
	}, defaultConfig())

	_, err := f.ledger.Draw("alice")
	require.NoError(t, err)

	snap := f.ledger.CreateSnapshot(17)
	assert.Equal(t, uint64(17), snap.LastRequestID)

	restored := ledger.New(types.VaultConfig{}, nil, ledger.Collaborators{})
	restored.LoadSnapshot(snap)

	assert.Equal(t, f.ledger.State(), restored.State())
	assert.Equal(t, f.ledger.Config(), restored.Config())
	assert.Equal(t, f.ledger.FeeBalance(), restored.FeeBalance())

	reward, ok := restored.PendingRewardOf("alice")
	require.True(t, ok)
	assert.Equal(t, uint64(100), reward.AmountOrID)
}

func TestApplyLogsReproduceDraw(t *testing.T) {
	catalog := []types.RewardDescriptor{
		{Kind: types.RewardFungible, AmountOrID: 100},
		{Kind: types.RewardFungible, AmountOrID: 200},
		{Kind: types.RewardFungible, AmountOrID: 300},
	}
	f := newFixture(t, catalog, defaultConfig())

	res, err := f.ledger.Draw("alice")
	require.NoError(t, err)

	replayed := ledger.New(types.VaultConfig{}, catalog, ledger.Collaborators{})
	replayed.ApplyDrawLog("alice", res.Index, res.Reward, res.Fee)

	assert.Equal(t, f.ledger.State(), replayed.State())
	assert.Equal(t, f.ledger.FeeBalance(), replayed.FeeBalance())

	reward, ok := replayed.PendingRewardOf("alice")
	require.True(t, ok)
	assert.Equal(t, res.Reward, reward)
}
