package main

import (
	"fmt"
	"math"

	"github.com/rewardvault/reward-vault-go/internal/ledger"
	"github.com/rewardvault/reward-vault-go/internal/token"
	"github.com/rewardvault/reward-vault-go/internal/types"
)

// newBenchLedger builds a fee-less vault with n fungible rewards. Zero fee
// keeps token collaborators out of the draw path so the benchmarks measure
// the pool, the actor and the WAL, not the token maps.
func newBenchLedger(n int) *ledger.Ledger {
	catalog := make([]types.RewardDescriptor, n)
	for i := range catalog {
		catalog[i] = types.RewardDescriptor{Kind: types.RewardFungible, AmountOrID: 1}
	}

	bank := token.NewBank("vault")
	bank.Mint("provider", math.MaxUint64)
	bank.Approve("provider", math.MaxUint64)

	return ledger.New(types.VaultConfig{Admin: "admin", Provider: "provider"}, catalog, ledger.Collaborators{
		Vault:    "vault",
		FeeToken: bank,
	})
}

// benchParticipants pre-generates unique addresses so every draw hits the
// idle-participant path instead of the single-pending gate.
func benchParticipants(n int) []types.Address {
	participants := make([]types.Address, n)
	for i := range participants {
		participants[i] = types.Address(fmt.Sprintf("p%d", i))
	}
	return participants
}
