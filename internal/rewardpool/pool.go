package rewardpool

import (
	"encoding/json"
	"os"

	"github.com/rewardvault/reward-vault-go/internal/types"
)

// Pool is the ordered collection of unclaimed reward descriptors. Position is
// the only identity a slot has; duplicate descriptors are valid. Removal uses
// swap-to-last compaction so that draw+remove stays O(1) no matter how large
// the pool grows.
//
// Pool is not safe for concurrent use. The actor goroutine is its only writer.
type Pool struct {
	catalog []types.RewardDescriptor
}

// NewPool creates a pool seeded with a copy of catalog.
func NewPool(catalog []types.RewardDescriptor) *Pool {
	p := &Pool{catalog: make([]types.RewardDescriptor, len(catalog))}
	copy(p.catalog, catalog)
	return p
}

// Size returns the number of unclaimed rewards.
func (p *Pool) Size() int {
	return len(p.catalog)
}

// Append adds a descriptor to the end of the pool.
func (p *Pool) Append(r types.RewardDescriptor) {
	p.catalog = append(p.catalog, r)
}

// At returns the descriptor at index without removing it.
func (p *Pool) At(index int) (types.RewardDescriptor, error) {
	if index < 0 || index >= len(p.catalog) {
		return types.RewardDescriptor{}, types.ErrIndexOutOfRange
	}
	return p.catalog[index], nil
}

// RemoveAt removes and returns the descriptor at index. When index is not the
// last slot the last descriptor is moved into the vacated slot before the
// truncation, destroying positional order but keeping removal O(1).
func (p *Pool) RemoveAt(index int) (types.RewardDescriptor, error) {
	n := len(p.catalog)
	if index < 0 || index >= n {
		return types.RewardDescriptor{}, types.ErrIndexOutOfRange
	}
	removed := p.catalog[index]
	if index != n-1 {
		p.catalog[index] = p.catalog[n-1]
	}
	p.catalog = p.catalog[:n-1]
	return removed, nil
}

// Restore undoes a RemoveAt(index) that returned removed. It reverses the
// swap-to-last compaction exactly: the descriptor that was moved into the
// vacated slot goes back to the end and removed reclaims its slot.
func (p *Pool) Restore(index int, removed types.RewardDescriptor) {
	if index == len(p.catalog) {
		// Removal of the last slot was a plain truncation.
		p.catalog = append(p.catalog, removed)
		return
	}
	moved := p.catalog[index]
	p.catalog[index] = removed
	p.catalog = append(p.catalog, moved)
}

// State returns a copy of the catalog.
func (p *Pool) State() []types.RewardDescriptor {
	out := make([]types.RewardDescriptor, len(p.catalog))
	copy(out, p.catalog)
	return out
}

// LoadCatalog replaces the pool contents. Used by snapshot recovery.
func (p *Pool) LoadCatalog(catalog []types.RewardDescriptor) {
	p.catalog = make([]types.RewardDescriptor, len(catalog))
	copy(p.catalog, catalog)
}

// LoadPoolCatalog reads a JSON seed catalog from configPath.
func LoadPoolCatalog(configPath string) ([]types.RewardDescriptor, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data types.ConfigCatalog
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, err
	}
	return data.Catalog, nil
}
