package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	bubbletea "github.com/charmbracelet/bubbletea"

	"github.com/rewardvault/reward-vault-go/cmd/cli/tui"
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

func main() {
	configPath := "./samples/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	loader := &config.ConfigImpl{}
	cfg, err := loader.LoadYAML(configPath)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	if cfg.WorkingDir == "" {
		cfg.WorkingDir = "./tmp"
	}
	if err := os.MkdirAll(cfg.WorkingDir, 0755); err != nil {
		fmt.Println("Error creating working dir:", err)
		os.Exit(1)
	}

	// Route actor logs into the TUI viewport instead of stdout.
	logChan := make(chan string, 64)
	appUtils := utils.NewDefaultUtils(cfg.WorkingDir, cfg.WorkingDir, slog.LevelInfo, &tui.ChannelWriter{Ch: logChan})

	var formatter types.LogFormatter
	switch cfg.WAL.Formatter {
	case "stringline":
		formatter = walformatter.NewStringLineFormatter()
	default:
		formatter = walformatter.NewJSONFormatter()
	}

	vaultAddr := types.Address("vault")
	bank := token.NewBank(vaultAddr)
	collectionA := token.NewRegistry(vaultAddr)
	collectionB := token.NewRegistry(vaultAddr)
	seedTokens(&cfg, bank, collectionA, collectionB)

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
	lastRequestID, lastWalPath, err := recovery.RecoverLedger(l, snapshotPath, formatter, appUtils)
	if err != nil {
		fmt.Println("Recovery failed:", err)
		os.Exit(1)
	}

	var seqNo uint64
	if lastWalPath == "" {
		lastWalPath, seqNo, err = appUtils.GenNextWALPath()
		if err != nil {
			fmt.Println("Error generating WAL path:", err)
			os.Exit(1)
		}
	} else {
		ext := strings.TrimPrefix(filepath.Ext(lastWalPath), ".")
		seqNo, _ = strconv.ParseUint(ext, 10, 64)
	}

	var store types.Storage
	if cfg.WAL.MaxFileSize > 0 {
		store, err = walstorage.NewFileMMapStorage(lastWalPath, seqNo, walstorage.FileMMapStorageOps{
			MMapFileSizeInBytes: int64(cfg.WAL.MaxFileSize),
		})
	} else {
		store, err = walstorage.NewFileStorage(lastWalPath)
	}
	if err != nil {
		fmt.Println("Error creating WAL storage:", err)
		os.Exit(1)
	}

	w, err := wal.NewWAL(lastWalPath, seqNo, formatter, store)
	if err != nil {
		fmt.Println("Error opening WAL:", err)
		os.Exit(1)
	}

	ctx := &types.Context{
		WAL:   w,
		Utils: appUtils,
	}

	var walStreamer walstream.WALStreamer = walstream.NewNoOpStreamer()
	for _, arg := range os.Args {
		if arg == "--stream-wal" {
			walStreamer = walstream.NewLogStreamer(appUtils.GetLogger())
			break
		}
	}

	sys, err := actor.NewSystem(ctx, l, &actor.SystemOptional{
		LastRequestID: lastRequestID,
		WALStreamer:   walStreamer,
	})
	if err != nil {
		fmt.Println("System startup error:", err)
		os.Exit(1)
	}
	defer sys.Stop()

	p := bubbletea.NewProgram(tui.NewModel(sys, cfg.Vault.Admin, logChan))
	if _, err := p.Run(); err != nil {
		fmt.Println("TUI error:", err)
		os.Exit(1)
	}
}

// seedTokens funds demo accounts so draws and redeems work out of the box:
// participants get fee money and allowances, the provider gets payout funds
// and the collection tokens named by the catalog.
func seedTokens(cfg *config.YAMLConfig, bank *token.Bank, collectionA, collectionB *token.Registry) {
	for _, participant := range []types.Address{"alice", "bob", "carol"} {
		bank.Mint(participant, 1_000)
		bank.Approve(participant, 1_000)
	}

	provider := cfg.Vault.Provider
	bank.Mint(provider, 1_000_000)
	bank.Approve(provider, 1_000_000)
	collectionA.SetApprovalForAll(provider, true)
	collectionB.SetApprovalForAll(provider, true)

	for _, r := range cfg.Pool.Catalog {
		switch r.Kind {
		case types.RewardNonFungibleA:
			collectionA.Mint(provider, r.AmountOrID)
		case types.RewardNonFungibleB:
			collectionB.Mint(provider, r.AmountOrID)
		}
	}
}
