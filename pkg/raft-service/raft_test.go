package raft_service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/lni/dragonboat/v4"
	"github.com/lni/dragonboat/v4/config"
	"github.com/stretchr/testify/require"

	"github.com/rewardvault/reward-vault-go/internal/types"
)

func TestRaftCluster_ThreeNodes(t *testing.T) {
	shardID := uint64(1)
	initialMembers := map[uint64]string{
		1: "localhost:9091",
		2: "localhost:9092",
		3: "localhost:9093",
	}

	nodes := make(map[uint64]*Node)
	for replicaID, raftAddress := range initialMembers {
		walDir := "wal-" + raftAddress
		nodeHostDir := "dragonboat-" + raftAddress
		defer os.RemoveAll(walDir)
		defer os.RemoveAll(nodeHostDir)

		nhc := config.NodeHostConfig{
			WALDir:         walDir,
			NodeHostDir:    nodeHostDir,
			RaftAddress:    raftAddress,
			RTTMillisecond: 200,
		}
		nh, err := dragonboat.NewNodeHost(nhc)
		require.NoError(t, err)
		defer nh.Close()

		rc := config.Config{
			ReplicaID:          replicaID,
			ShardID:            shardID,
			ElectionRTT:        10,
			HeartbeatRTT:       1,
			CheckQuorum:        true,
			SnapshotEntries:    100,
			CompactionOverhead: 50,
		}
		err = nh.StartReplica(initialMembers, false, NewVaultStateMachine, rc)
		require.NoError(t, err)

		nodes[replicaID] = &Node{nh: nh, shardID: shardID}
	}

	// Wait for a leader to be elected.
	var leaderID uint64
	require.Eventually(t, func() bool {
		var err error
		var term uint64
		var valid bool
		leaderID, term, valid, err = nodes[1].GetLeaderID()
		return err == nil && valid && leaderID > 0 && term > 0
	}, 20*time.Second, 1*time.Second, "Leader not elected")

	leaderNode := nodes[leaderID]

	// Propose a pool append to the leader node.
	reward := types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 100}
	ctxAdd, cancelAdd := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelAdd()
	err := leaderNode.AddReward(ctxAdd, reward)
	require.NoError(t, err)

	// Verify that the state was replicated to all nodes.
	require.Eventually(t, func() bool {
		for replicaID, node := range nodes {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			state, err := node.GetState(ctx)
			if err != nil {
				t.Logf("Failed to get state from replica %d: %v", replicaID, err)
				return false
			}
			if len(state) != 1 || state[0] != reward {
				t.Logf("State not replicated on replica %d. Got: %+v", replicaID, state)
				return false
			}
		}
		return true
	}, 20*time.Second, 1*time.Second, "State not replicated")

	// Propose a draw from a follower node.
	followerID := uint64(0)
	for id := range nodes {
		if id != leaderID {
			followerID = id
			break
		}
	}
	require.NotZero(t, followerID)
	followerNode := nodes[followerID]

	ctxDraw, cancelDraw := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelDraw()
	err = followerNode.Draw(ctxDraw, "alice", 0, reward, 10)
	require.NoError(t, err)

	// Verify the draw emptied the replicated pool.
	require.Eventually(t, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		state, err := leaderNode.GetState(ctx)
		if err != nil {
			return false
		}
		return len(state) == 0
	}, 20*time.Second, 1*time.Second, "Draw not applied")
}
