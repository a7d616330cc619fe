package main

import (
	"testing"

	"github.com/rewardvault/reward-vault-go/internal/entropy"
)

func BenchmarkDrawIndex(b *testing.B) {
	source := entropy.NewClockSource()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := entropy.DrawIndex(source.Sample(), 42, 1_000_000); err != nil {
			b.Fatalf("draw index failed: %v", err)
		}
	}
}
