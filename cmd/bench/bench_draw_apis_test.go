package main

import (
	"testing"
)

// Baseline: ledger calls without the actor or WAL in the path.

func BenchmarkLedgerDraw(b *testing.B) {
	l := newBenchLedger(b.N)
	participants := benchParticipants(b.N)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := l.Draw(participants[i]); err != nil {
			b.Fatalf("draw %d failed: %v", i, err)
		}
	}
}

func BenchmarkLedgerDrawRedeem(b *testing.B) {
	l := newBenchLedger(b.N)
	participants := benchParticipants(b.N)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := l.Draw(participants[i]); err != nil {
			b.Fatalf("draw %d failed: %v", i, err)
		}
		if _, err := l.Redeem(participants[i]); err != nil {
			b.Fatalf("redeem %d failed: %v", i, err)
		}
	}
}
