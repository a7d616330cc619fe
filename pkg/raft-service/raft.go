package raft_service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lni/dragonboat/v4"
	"github.com/lni/dragonboat/v4/config"
	"github.com/lni/dragonboat/v4/statemachine"
	"github.com/rewardvault/reward-vault-go/internal/ledger"
	"github.com/rewardvault/reward-vault-go/internal/replay"
	"github.com/rewardvault/reward-vault-go/internal/types"
)

// VaultStateMachine replicates vault log entries across a dragonboat shard.
// Proposals are the same serialized entries the WAL carries, so a replica
// converges by replaying them in commit order.
type VaultStateMachine struct {
	ShardID   uint64
	ReplicaID uint64
	ledger    *ledger.Ledger
}

// NewVaultStateMachine creates a new VaultStateMachine.
func NewVaultStateMachine(shardID uint64, replicaID uint64) statemachine.IStateMachine {
	return &VaultStateMachine{
		ShardID:   shardID,
		ReplicaID: replicaID,
		ledger:    ledger.New(types.VaultConfig{}, nil, ledger.Collaborators{}),
	}
}

func decodeEntry(cmd []byte) (types.WalLogEntry, error) {
	var base types.WalLogEntryBase
	if err := json.Unmarshal(cmd, &base); err != nil {
		return nil, err
	}

	var entry types.WalLogEntry
	switch base.Type {
	case types.LogTypeDraw:
		entry = &types.WalLogDrawItem{}
	case types.LogTypeRedeem:
		entry = &types.WalLogRedeemItem{}
	case types.LogTypeAddReward:
		entry = &types.WalLogAddItem{}
	case types.LogTypeRemoveReward:
		entry = &types.WalLogRemoveItem{}
	case types.LogTypeSetConfig:
		entry = &types.WalLogSetConfigItem{}
	case types.LogTypePause:
		entry = &types.WalLogPauseItem{}
	case types.LogTypeWithdraw:
		entry = &types.WalLogWithdrawItem{}
	default:
		return nil, nil
	}

	if err := json.Unmarshal(cmd, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update applies the committed log entries to the state machine.
func (s *VaultStateMachine) Update(entry statemachine.Entry) (statemachine.Result, error) {
	logEntry, err := decodeEntry(entry.Cmd)
	if err != nil {
		return statemachine.Result{}, err
	}
	if logEntry == nil {
		return statemachine.Result{Value: 0}, nil
	}

	replay.ApplyLog(s.ledger, logEntry)
	return statemachine.Result{Value: uint64(len(entry.Cmd))}, nil
}

// Lookup performs a read-only query on the state machine and returns the
// serialized pool catalog.
func (s *VaultStateMachine) Lookup(query interface{}) (interface{}, error) {
	state := s.ledger.State()
	data, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SaveSnapshot creates a snapshot of the state machine.
func (s *VaultStateMachine) SaveSnapshot(w io.Writer, fc statemachine.ISnapshotFileCollection, done <-chan struct{}) error {
	snap := s.ledger.CreateSnapshot(0)

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

// RecoverFromSnapshot restores the state machine from a snapshot.
func (s *VaultStateMachine) RecoverFromSnapshot(r io.Reader, files []statemachine.SnapshotFile, done <-chan struct{}) error {
	var snap types.VaultSnapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return err
	}

	s.ledger.LoadSnapshot(&snap)
	return nil
}

// Close closes the state machine.
func (s *VaultStateMachine) Close() error {
	return nil
}

// Node is a wrapper around the dragonboat NodeHost.
type Node struct {
	nh      *dragonboat.NodeHost
	shardID uint64
}

// NewNode creates and starts a new dragonboat node.
func NewNode(replicaID uint64, raftAddress string, initialMembers map[uint64]string) (*Node, error) {
	rc := config.Config{
		ReplicaID:          replicaID,
		ShardID:            1,
		ElectionRTT:        10,
		HeartbeatRTT:       1,
		CheckQuorum:        true,
		SnapshotEntries:    10000,
		CompactionOverhead: 5000,
	}

	nhc := config.NodeHostConfig{
		WALDir:         "wal",
		NodeHostDir:    "dragonboat",
		RaftAddress:    raftAddress,
		RTTMillisecond: 200,
	}

	nh, err := dragonboat.NewNodeHost(nhc)
	if err != nil {
		return nil, err
	}

	createStateMachine := func(shardID uint64, replicaID uint64) statemachine.IStateMachine {
		return NewVaultStateMachine(shardID, replicaID)
	}

	if err := nh.StartReplica(initialMembers, false, createStateMachine, rc); err != nil {
		return nil, err
	}

	return &Node{nh: nh, shardID: rc.ShardID}, nil
}

// GetLeaderID returns the current leader of the shard.
func (n *Node) GetLeaderID() (uint64, uint64, bool, error) {
	leaderID, term, valid, err := n.nh.GetLeaderID(n.shardID)
	return leaderID, term, valid, err
}

func (n *Node) propose(ctx context.Context, entry types.WalLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	session := n.nh.GetNoOPSession(n.shardID)
	_, err = n.nh.SyncPropose(ctx, session, data)
	return err
}

// AddReward proposes a pool append to the shard.
func (n *Node) AddReward(ctx context.Context, reward types.RewardDescriptor) error {
	return n.propose(ctx, &types.WalLogAddItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeAddReward},
		Reward:          reward,
	})
}

// Draw proposes a successful draw to the shard.
func (n *Node) Draw(ctx context.Context, participant types.Address, index int, reward types.RewardDescriptor, fee uint64) error {
	return n.propose(ctx, &types.WalLogDrawItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeDraw},
		Participant:     participant,
		Index:           index,
		Reward:          reward,
		Fee:             fee,
		Success:         true,
	})
}

// Redeem proposes a successful redeem to the shard.
func (n *Node) Redeem(ctx context.Context, participant types.Address) error {
	return n.propose(ctx, &types.WalLogRedeemItem{
		WalLogEntryBase: types.WalLogEntryBase{Type: types.LogTypeRedeem},
		Participant:     participant,
		Success:         true,
	})
}

// GetState reads the replicated pool catalog with a linearizable read.
func (n *Node) GetState(ctx context.Context) ([]types.RewardDescriptor, error) {
	result, err := n.nh.SyncRead(ctx, n.shardID, nil)
	if err != nil {
		return nil, err
	}
	data, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected lookup result type %T", result)
	}
	var state []types.RewardDescriptor
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return state, nil
}

// Close stops the node host.
func (n *Node) Close() {
	n.nh.Close()
}
