package main

import (
	"runtime"
	"testing"
	"time"

	"github.com/rewardvault/reward-vault-go/internal/actor"
	"github.com/rewardvault/reward-vault-go/internal/types"
	"github.com/rewardvault/reward-vault-go/internal/utils"
)

func BenchmarkActorDrawNoWalChannel(b *testing.B) {
	ctx := &types.Context{
		WAL:   &utils.MockWAL{},
		Utils: &utils.MockUtils{},
	}
	l := newBenchLedger(b.N)
	participants := benchParticipants(b.N)

	opt := &actor.SystemOptional{RequestBufferSize: b.N}
	sys, err := actor.NewSystem(ctx, l, opt)
	if err != nil {
		b.Fatalf("failed to start system: %v", err)
	}

	b.ResetTimer()
	start := time.Now()
	var memStatsStart, memStatsEnd runtime.MemStats

	runtime.ReadMemStats(&memStatsStart)

	resChans := make([]<-chan actor.DrawResponse, b.N)
	for i := 0; i < b.N; i++ {
		resChans[i] = sys.Draw(participants[i])
	}

	for _, ch := range resChans {
		<-ch
	}

	runtime.ReadMemStats(&memStatsEnd)
	elapsed := time.Since(start)

	b.StopTimer()
	sys.Stop()

	b.ReportMetric(float64(b.N)/elapsed.Seconds(), "draws/sec")
	b.ReportMetric(float64(memStatsEnd.TotalAlloc-memStatsStart.TotalAlloc)/float64(b.N), "bytes/draw")
	b.ReportMetric(float64(memStatsEnd.NumGC-memStatsStart.NumGC), "gc_count")
}
