package rewardpool

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewardvault/reward-vault-go/internal/types"
)

func TestLoadPoolCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	seed := `{"catalog":[{"kind":1,"amount_or_id":100},{"kind":2,"amount_or_id":7}]}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	catalog, err := LoadPoolCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 100}, catalog[0])
	assert.Equal(t, types.RewardDescriptor{Kind: types.RewardNonFungibleA, AmountOrID: 7}, catalog[1])
}

func TestLoadPoolCatalogMissingFile(t *testing.T) {
	_, err := LoadPoolCatalog(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadPoolCatalogBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := LoadPoolCatalog(path)
	assert.Error(t, err)
}
