package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rewardvault/reward-vault-go/internal/actor"
	"github.com/rewardvault/reward-vault-go/internal/config"
	"github.com/rewardvault/reward-vault-go/internal/ledger"
	"github.com/rewardvault/reward-vault-go/internal/recovery"
	"github.com/rewardvault/reward-vault-go/internal/token"
	"github.com/rewardvault/reward-vault-go/internal/types"
	"github.com/rewardvault/reward-vault-go/internal/utils"
	"github.com/rewardvault/reward-vault-go/internal/wal"
	walformatter "github.com/rewardvault/reward-vault-go/internal/wal/formatter"
	walstorage "github.com/rewardvault/reward-vault-go/internal/wal/storage"
	"github.com/rewardvault/reward-vault-go/internal/walstream"
)

// Line-mode driver that keeps drawing for a rotating set of participants.
// Handy for soaking the WAL rotation path without the TUI in the way.
func main() {
	baseDir := "."
	defaultConfigPath := baseDir + "/samples/config.yaml"
	tmpDir := baseDir + "/tmp"

	appUtils := utils.NewDefaultUtils(tmpDir, tmpDir, slog.LevelDebug, nil)

	loader := &config.ConfigImpl{}
	cfg, err := loader.LoadYAML(defaultConfigPath)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(tmpDir, 0755); err != nil {
		fmt.Println("Error creating tmp dir:", err)
		os.Exit(1)
	}

	walFormatter := walformatter.NewStringLineFormatter()

	vaultAddr := types.Address("vault")
	bank := token.NewBank(vaultAddr)
	collectionA := token.NewRegistry(vaultAddr)
	collectionB := token.NewRegistry(vaultAddr)

	participants := []types.Address{"alice", "bob", "carol"}
	for _, p := range participants {
		bank.Mint(p, 1_000_000)
		bank.Approve(p, 1_000_000)
	}
	bank.Mint(cfg.Vault.Provider, 1_000_000)
	bank.Approve(cfg.Vault.Provider, 1_000_000)
	collectionA.SetApprovalForAll(cfg.Vault.Provider, true)
	collectionB.SetApprovalForAll(cfg.Vault.Provider, true)
	for _, r := range cfg.Pool.Catalog {
		switch r.Kind {
		case types.RewardNonFungibleA:
			collectionA.Mint(cfg.Vault.Provider, r.AmountOrID)
		case types.RewardNonFungibleB:
			collectionB.Mint(cfg.Vault.Provider, r.AmountOrID)
		}
	}

	l := ledger.New(cfg.Vault, cfg.Pool.Catalog, ledger.Collaborators{
		Vault:       vaultAddr,
		FeeToken:    bank,
		CollectionA: collectionA,
		CollectionB: collectionB,
	})

	snapshotPath := ""
	if p := appUtils.GenSnapshotPath(); p != nil {
		snapshotPath = *p
	}
	lastRequestID, lastWalPath, err := recovery.RecoverLedger(l, snapshotPath, walFormatter, appUtils)
	if err != nil {
		fmt.Println("Recovery failed:", err)
		os.Exit(1)
	}

	var seqNo uint64
	if lastWalPath == "" {
		lastWalPath, seqNo, err = appUtils.GenNextWALPath()
		if err != nil {
			fmt.Println("Error generating new WAL path:", err)
			os.Exit(1)
		}
	}

	// Tiny mmap region so rotation kicks in quickly during a soak.
	fileStorage, err := walstorage.NewFileMMapStorage(lastWalPath, seqNo, walstorage.FileMMapStorageOps{
		MMapFileSizeInBytes: 1024,
	})
	if err != nil {
		fmt.Println("Error creating file storage:", err)
		os.Exit(1)
	}
	w, err := wal.NewWAL(lastWalPath, seqNo, walFormatter, fileStorage)
	if err != nil {
		fmt.Println("Error opening WAL:", err)
		os.Exit(1)
	}

	ctx := &types.Context{
		WAL:   w,
		Utils: appUtils,
	}

	streamWAL := false
	for _, arg := range os.Args {
		if arg == "--stream-wal" {
			streamWAL = true
			break
		}
	}

	var walStreamer walstream.WALStreamer
	if streamWAL {
		fmt.Println("WAL streaming is enabled.")
		walStreamer = walstream.NewLogStreamer(appUtils.GetLogger())
	} else {
		walStreamer = walstream.NewNoOpStreamer()
	}

	sys, err := actor.NewSystem(ctx, l, &actor.SystemOptional{
		FlushAfterNDraw: 5,
		LastRequestID:   lastRequestID,
		WALStreamer:     walStreamer,
	})
	if err != nil {
		fmt.Println("System startup error:", err)
		return
	}
	sys.SetRequestID(lastRequestID)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("CLI Controls:")
	fmt.Println("  - Press '1' to add 10 fungible rewards.")
	fmt.Println("  - Press '2' to toggle pause.")
	fmt.Println("  - Press Ctrl+C or send SIGTERM to exit.")
	fmt.Println("-------------------------------------------------")
	fmt.Println("[Pool state] ", sys.State())

	drawLock := make(chan struct{}, 1) // Used to lock draw requests
	drawLock <- struct{}{}

	go func() {
		i := 0
		for {
			<-drawLock
			participant := participants[i%len(participants)]
			i++

			resp := <-sys.Draw(participant)
			if resp.Err == nil {
				fmt.Printf("[Request %d] %s drew %s(%d)\n", resp.RequestID, participant, resp.Reward.Kind, resp.Reward.AmountOrID)
				redeemResp := <-sys.Redeem(participant)
				if redeemResp.Err != nil {
					fmt.Printf("[Request %d] Redeem failed: %s\n", redeemResp.RequestID, redeemResp.Err)
				}
			} else {
				fmt.Printf("[Request %d] Draw failed: %s \n", resp.RequestID, resp.Err)
			}
			drawLock <- struct{}{}
			time.Sleep(1 * time.Second)
		}
	}()

	// Goroutine to handle user input
	pauseToggle := false
	go func() {
		reader := bufio.NewReader(os.Stdin)
		for {
			char, _, err := reader.ReadRune()
			if err != nil {
				fmt.Println("Error reading input:", err)
				return
			}

			switch char {
			case '1':
				fmt.Println("\n--- Adding 10 fungible rewards... ---")
				rewards := make([]types.RewardDescriptor, 10)
				for i := range rewards {
					rewards[i] = types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 100}
				}
				err := sys.AddRewards(cfg.Vault.Admin, rewards)
				if err != nil {
					fmt.Printf("Failed to add rewards: %v\n", err)
				} else {
					fmt.Println("--- Pool updated. New pool state: ---")
					fmt.Println(sys.State())
					fmt.Println("-----------------------------------------")
				}

			case '2':
				fmt.Println("\n--- Toggling pause... ---")
				var err error
				if pauseToggle {
					err = sys.Unpause(cfg.Vault.Admin)
				} else {
					err = sys.Pause(cfg.Vault.Admin)
				}
				if err != nil {
					fmt.Printf("Failed to toggle pause: %v\n", err)
				} else {
					pauseToggle = !pauseToggle
					fmt.Println("--- Paused:", pauseToggle, "---")
				}
			}
		}
	}()

	<-sigChan
	fmt.Println("Shutting down gracefully...")
	<-drawLock

	sys.Stop()

	fmt.Println("[Pool state] ", l.State())
	fmt.Println("Shutdown complete.")
}
