package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewardvault/reward-vault-go/internal/config"
	"github.com/rewardvault/reward-vault-go/internal/types"
)

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	seed := `{"catalog":[{"kind":1,"amount_or_id":100},{"kind":3,"amount_or_id":11}]}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	c := &config.ConfigImpl{}
	catalog, err := c.LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog.Catalog, 2)
	assert.Equal(t, types.RewardNonFungibleB, catalog.Catalog[1].Kind)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	seed := `
working_dir: ./tmp
vault:
  admin: admin
  provider: provider
  fee_amount: 10
  salt: 42
pool:
  catalog:
    - kind: 1
      amount_or_id: 100
wal:
  max_file_size: 1024
  max_buffer_size: 100
  formatter: stringline
`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	c := &config.ConfigImpl{}
	cfg, err := c.LoadYAML(path)
	require.NoError(t, err)

	assert.Equal(t, "./tmp", cfg.WorkingDir)
	assert.Equal(t, types.Address("admin"), cfg.Vault.Admin)
	assert.Equal(t, types.Address("provider"), cfg.Vault.Provider)
	assert.Equal(t, uint64(10), cfg.Vault.FeeAmount)
	assert.Equal(t, uint64(42), cfg.Vault.Salt)
	assert.False(t, cfg.Vault.Paused)
	require.Len(t, cfg.Pool.Catalog, 1)
	assert.Equal(t, uint64(100), cfg.Pool.Catalog[0].AmountOrID)
	assert.Equal(t, 1024, cfg.WAL.MaxFileSize)
	assert.Equal(t, "stringline", cfg.WAL.Formatter)
}

func TestLoadYAMLMissingFile(t *testing.T) {
	c := &config.ConfigImpl{}
	_, err := c.LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
