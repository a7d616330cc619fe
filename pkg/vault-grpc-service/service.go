// Package vault_grpc_service exposes the vault actor system over gRPC.
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative -I proto proto/vault.proto
package vault_grpc_service

import (
	"context"
	"net"

	"github.com/rewardvault/reward-vault-go/internal/actor"
	"github.com/rewardvault/reward-vault-go/internal/types"
	generated "github.com/rewardvault/reward-vault-go/pkg/vault-grpc-service/generated"
	"google.golang.org/grpc"
)

// ActorSystem is an interface that actor.System implements.
type ActorSystem interface {
	State() []types.RewardDescriptor
	Status() actor.Status
	Draw(participant types.Address) <-chan actor.DrawResponse
	Redeem(participant types.Address) <-chan actor.RedeemResponse
	PendingRewardOf(participant types.Address) (types.RewardDescriptor, bool)
	AddRewards(caller types.Address, rs []types.RewardDescriptor) error
	RemoveReward(caller types.Address, index int) error
	Pause(caller types.Address) error
	Unpause(caller types.Address) error
	Withdraw(caller types.Address) (uint64, error)
	Stop()
}

// VaultService is a gRPC service that exposes the vault functionality.
type VaultService struct {
	generated.UnimplementedVaultServiceServer
	system ActorSystem
}

// NewVaultService creates a new VaultService.
func NewVaultService(system ActorSystem) *VaultService {
	return &VaultService{
		system: system,
	}
}

// ListenAndServe starts the gRPC server.
func ListenAndServe(ctx context.Context, system ActorSystem, listenAddress string) error {
	lis, err := net.Listen("tcp", listenAddress)
	if err != nil {
		return err
	}
	s := grpc.NewServer()
	grpcService := NewVaultService(system)
	generated.RegisterVaultServiceServer(s, grpcService)

	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	return s.Serve(lis)
}

func toRewardItem(r types.RewardDescriptor) *generated.RewardItem {
	return &generated.RewardItem{
		Kind:       generated.RewardKind(r.Kind),
		AmountOrId: r.AmountOrID,
	}
}

// GetState returns the current pool catalog and vault status.
func (s *VaultService) GetState(ctx context.Context, req *generated.GetStateRequest) (*generated.GetStateResponse, error) {
	status := s.system.Status()
	state := s.system.State()
	items := make([]*generated.RewardItem, 0, len(state))
	for _, item := range state {
		items = append(items, toRewardItem(item))
	}
	return &generated.GetStateResponse{
		Items:      items,
		FeeBalance: status.FeeBalance,
		Paused:     status.Config.Paused,
	}, nil
}

// GetPending reports a participant's pending reward, if any.
func (s *VaultService) GetPending(ctx context.Context, req *generated.PendingRequest) (*generated.PendingResponse, error) {
	reward, ok := s.system.PendingRewardOf(types.Address(req.GetParticipant()))
	resp := &generated.PendingResponse{HasPending: ok}
	if ok {
		resp.Reward = toRewardItem(reward)
	}
	return resp, nil
}

// Draw performs one draw for the requesting participant.
func (s *VaultService) Draw(ctx context.Context, req *generated.DrawRequest) (*generated.DrawResponse, error) {
	resp := <-s.system.Draw(types.Address(req.GetParticipant()))
	out := &generated.DrawResponse{RequestId: resp.RequestID}
	if resp.Err != nil {
		out.Error = resp.Err.Error()
		return out, nil
	}
	out.Reward = toRewardItem(resp.Reward)
	return out, nil
}

// Redeem collects the participant's pending reward.
func (s *VaultService) Redeem(ctx context.Context, req *generated.RedeemRequest) (*generated.RedeemResponse, error) {
	resp := <-s.system.Redeem(types.Address(req.GetParticipant()))
	out := &generated.RedeemResponse{RequestId: resp.RequestID}
	if resp.Err != nil {
		out.Error = resp.Err.Error()
		return out, nil
	}
	out.Reward = toRewardItem(resp.Reward)
	return out, nil
}

// AddRewards appends a batch of descriptors to the pool.
func (s *VaultService) AddRewards(ctx context.Context, req *generated.AddRewardsRequest) (*generated.AddRewardsResponse, error) {
	rewards := make([]types.RewardDescriptor, 0, len(req.GetRewards()))
	for _, r := range req.GetRewards() {
		rewards = append(rewards, types.RewardDescriptor{
			Kind:       types.RewardKind(r.GetKind()),
			AmountOrID: r.GetAmountOrId(),
		})
	}
	var errMsg string
	if err := s.system.AddRewards(types.Address(req.GetCaller()), rewards); err != nil {
		errMsg = err.Error()
	}
	return &generated.AddRewardsResponse{Error: errMsg}, nil
}

// RemoveReward removes the descriptor at the given index.
func (s *VaultService) RemoveReward(ctx context.Context, req *generated.RemoveRewardRequest) (*generated.RemoveRewardResponse, error) {
	var errMsg string
	if err := s.system.RemoveReward(types.Address(req.GetCaller()), int(req.GetIndex())); err != nil {
		errMsg = err.Error()
	}
	return &generated.RemoveRewardResponse{Error: errMsg}, nil
}

// SetPaused toggles the participant-facing gate.
func (s *VaultService) SetPaused(ctx context.Context, req *generated.SetPausedRequest) (*generated.SetPausedResponse, error) {
	caller := types.Address(req.GetCaller())
	var err error
	if req.GetPaused() {
		err = s.system.Pause(caller)
	} else {
		err = s.system.Unpause(caller)
	}
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	return &generated.SetPausedResponse{Error: errMsg}, nil
}

// Withdraw sweeps the fee balance to the administrator.
func (s *VaultService) Withdraw(ctx context.Context, req *generated.WithdrawRequest) (*generated.WithdrawResponse, error) {
	amount, err := s.system.Withdraw(types.Address(req.GetCaller()))
	out := &generated.WithdrawResponse{Amount: amount}
	if err != nil {
		out.Error = err.Error()
	}
	return out, nil
}
