package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/rewardvault/reward-vault-go/internal/actor"
	"github.com/rewardvault/reward-vault-go/internal/types"
	"github.com/rewardvault/reward-vault-go/internal/utils"
	"github.com/rewardvault/reward-vault-go/internal/wal"
	walformatter "github.com/rewardvault/reward-vault-go/internal/wal/formatter"
	walstorage "github.com/rewardvault/reward-vault-go/internal/wal/storage"
)

func BenchmarkActorDrawWithFileWAL(b *testing.B) {
	tmpDir := b.TempDir()
	walPath := filepath.Join(tmpDir, types.WALBaseName+".000")

	jsonFormatter := walformatter.NewJSONFormatter()
	fileStorage, err := walstorage.NewFileStorage(walPath)
	if err != nil {
		b.Fatalf("failed to create file storage: %v", err)
	}
	w, err := wal.NewWAL(walPath, 0, jsonFormatter, fileStorage)
	if err != nil {
		b.Fatalf("failed to create WAL: %v", err)
	}

	ctx := &types.Context{
		WAL:   w,
		Utils: &utils.MockUtils{},
	}
	l := newBenchLedger(b.N)
	participants := benchParticipants(b.N)

	sys, err := actor.NewSystem(ctx, l, &actor.SystemOptional{
		RequestBufferSize: b.N,
		FlushAfterNDraw:   10_000,
	})
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

	walInfo, _ := os.Stat(walPath)
	walSize := float64(walInfo.Size())

	b.ReportMetric(float64(b.N)/elapsed.Seconds(), "draws/sec")
	b.ReportMetric(float64(memStatsEnd.TotalAlloc-memStatsStart.TotalAlloc)/float64(b.N), "bytes/draw")
	b.ReportMetric(float64(memStatsEnd.NumGC-memStatsStart.NumGC), "gc_count")
	b.ReportMetric(walSize/float64(b.N), "wal_bytes/draw")
	b.ReportMetric(walSize, "wal_file_size")
}
