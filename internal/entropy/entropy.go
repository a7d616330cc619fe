// Package entropy derives draw indexes from low-grain environment signals.
//
// The derivation is feasibility-grade only: every input (coarse timestamp,
// difficulty signal, configured salt) is observable or influenceable by a
// privileged party, so the resulting index is NOT unpredictable in an
// adversarial, high-value setting. Deployments that need real fairness must
// swap the Source for an externally verifiable randomness oracle.
package entropy

import (
	"encoding/binary"
	"hash/fnv"
	"sync/atomic"
	"time"

	"github.com/rewardvault/reward-vault-go/internal/types"
)

// Seed is the entropy input of a single draw.
type Seed struct {
	Timestamp  int64  // low-grain time signal
	Difficulty uint64 // variability signal from the execution environment
}

// Source samples the environment signals at draw time.
type Source interface {
	Sample() Seed
}

// ClockSource is the default Source: wall-clock seconds plus a monotonically
// drifting counter standing in for the environment's difficulty signal.
type ClockSource struct {
	drift uint64
}

var _ Source = (*ClockSource)(nil)

func NewClockSource() *ClockSource {
	return &ClockSource{}
}

func (s *ClockSource) Sample() Seed {
	return Seed{
		Timestamp:  time.Now().Unix(),
		Difficulty: atomic.AddUint64(&s.drift, 1),
	}
}

// FixedSource always yields the same seed. Tests use it to pin draw outcomes.
type FixedSource struct {
	Value Seed
}

var _ Source = (*FixedSource)(nil)

func (s *FixedSource) Sample() Seed { return s.Value }

// DrawIndex reduces a seed and the configured salt to an index in [0, size).
// The same (seed, salt, size) triple always yields the same index; that
// determinism is what makes the scheme predictable, and also what lets WAL
// replay stay exact without re-sampling entropy.
func DrawIndex(seed Seed, salt uint64, size int) (int, error) {
	if size <= 0 {
		return 0, types.ErrEmptyPool
	}

	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(seed.Timestamp))
	binary.LittleEndian.PutUint64(buf[8:], seed.Difficulty)
	binary.LittleEndian.PutUint64(buf[16:], salt)

	h := fnv.New64a()
	h.Write(buf[:])
	return int(h.Sum64() % uint64(size)), nil
}
