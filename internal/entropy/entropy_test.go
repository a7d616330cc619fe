package entropy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewardvault/reward-vault-go/internal/entropy"
	"github.com/rewardvault/reward-vault-go/internal/types"
)

func TestDrawIndexDeterministic(t *testing.T) {
	seed := entropy.Seed{Timestamp: 1700000000, Difficulty: 12345}

	first, err := entropy.DrawIndex(seed, 42, 10)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		again, err := entropy.DrawIndex(seed, 42, 10)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDrawIndexWithinBounds(t *testing.T) {
	source := entropy.NewClockSource()
	for _, size := range []int{1, 2, 7, 1000} {
		for i := 0; i < 1000; i++ {
			index, err := entropy.DrawIndex(source.Sample(), uint64(i), size)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, index, 0)
			assert.Less(t, index, size)
		}
	}
}

func TestDrawIndexEmptyPool(t *testing.T) {
	_, err := entropy.DrawIndex(entropy.Seed{}, 0, 0)
	assert.ErrorIs(t, err, types.ErrEmptyPool)

	_, err = entropy.DrawIndex(entropy.Seed{}, 0, -1)
	assert.ErrorIs(t, err, types.ErrEmptyPool)
}

func TestDrawIndexSaltChangesOutcome(t *testing.T) {
	seed := entropy.Seed{Timestamp: 1700000000, Difficulty: 1}

	// Not every salt pair lands on different indices, but across many salts
	// at least one must diverge from the baseline.
	baseline, err := entropy.DrawIndex(seed, 0, 1000)
	require.NoError(t, err)

	diverged := false
	for salt := uint64(1); salt < 50; salt++ {
		index, err := entropy.DrawIndex(seed, salt, 1000)
		require.NoError(t, err)
		if index != baseline {
			diverged = true
			break
		}
	}
	assert.True(t, diverged)
}

func TestClockSourceDrifts(t *testing.T) {
	source := entropy.NewClockSource()

	a := source.Sample()
	b := source.Sample()
	assert.NotEqual(t, a.Difficulty, b.Difficulty)
}

func TestFixedSource(t *testing.T) {
	source := &entropy.FixedSource{Value: entropy.Seed{Timestamp: 7, Difficulty: 9}}
	assert.Equal(t, entropy.Seed{Timestamp: 7, Difficulty: 9}, source.Sample())
}
