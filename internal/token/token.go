// Package token provides in-process implementations of the transfer
// capabilities the vault depends on. The vault only ever sees the
// types.FungibleToken and types.NonFungibleToken interfaces; hosts embedding
// the vault in a richer environment substitute their own implementations.
package token

import (
	"errors"
	"sync"

	"github.com/rewardvault/reward-vault-go/internal/types"
)

var (
	ErrInsufficientBalance   = errors.New("token: insufficient balance")
	ErrInsufficientAllowance = errors.New("token: insufficient allowance")
	ErrNotOwner              = errors.New("token: sender does not own token")
	ErrNotApproved           = errors.New("token: operator not approved")
	ErrUnknownToken          = errors.New("token: unknown token id")
)

// Bank is a fungible-token ledger. One address, the operator, is the implicit
// caller of TransferFrom: moving funds out of any other account requires that
// account to have granted the operator an allowance first.
type Bank struct {
	mu         sync.RWMutex
	operator   types.Address
	balances   map[types.Address]uint64
	allowances map[types.Address]uint64
}

var _ types.FungibleToken = (*Bank)(nil)

// NewBank creates a bank whose TransferFrom calls act on behalf of operator.
func NewBank(operator types.Address) *Bank {
	return &Bank{
		operator:   operator,
		balances:   make(map[types.Address]uint64),
		allowances: make(map[types.Address]uint64),
	}
}

// Mint credits amount to addr.
func (b *Bank) Mint(addr types.Address, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[addr] += amount
}

// Approve grants the operator permission to spend up to amount from owner.
func (b *Bank) Approve(owner types.Address, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allowances[owner] = amount
}

// Allowance returns the remaining spend the operator holds over owner.
func (b *Bank) Allowance(owner types.Address) uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.allowances[owner]
}

// BalanceOf returns the balance of addr.
func (b *Bank) BalanceOf(addr types.Address) uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balances[addr]
}

// TransferFrom moves amount from one account to another. Transfers out of the
// operator's own account need no allowance; any other source account must
// have approved at least amount. The transfer is all-or-nothing.
func (b *Bank) TransferFrom(from, to types.Address, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.balances[from] < amount {
		return ErrInsufficientBalance
	}
	if from != b.operator {
		if b.allowances[from] < amount {
			return ErrInsufficientAllowance
		}
		b.allowances[from] -= amount
	}
	b.balances[from] -= amount
	b.balances[to] += amount
	return nil
}

// Registry is a non-fungible-token ledger keyed by token id. As with Bank,
// one operator address is the implicit caller of TransferFrom and needs the
// owner's approval to move tokens it does not own.
type Registry struct {
	mu          sync.RWMutex
	operator    types.Address
	owners      map[uint64]types.Address
	approvedAll map[types.Address]bool
}

var _ types.NonFungibleToken = (*Registry)(nil)

// NewRegistry creates a registry whose TransferFrom calls act on behalf of
// operator.
func NewRegistry(operator types.Address) *Registry {
	return &Registry{
		operator:    operator,
		owners:      make(map[uint64]types.Address),
		approvedAll: make(map[types.Address]bool),
	}
}

// Mint assigns tokenID to owner.
func (r *Registry) Mint(owner types.Address, tokenID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[tokenID] = owner
}

// SetApprovalForAll lets owner grant or revoke the operator's right to move
// any of its tokens.
func (r *Registry) SetApprovalForAll(owner types.Address, approved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if approved {
		r.approvedAll[owner] = true
		return
	}
	delete(r.approvedAll, owner)
}

// OwnerOf returns the owner of tokenID.
func (r *Registry) OwnerOf(tokenID uint64) (types.Address, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	owner, ok := r.owners[tokenID]
	return owner, ok
}

// TransferFrom moves ownership of tokenID from one address to another.
func (r *Registry) TransferFrom(from, to types.Address, tokenID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.owners[tokenID]
	if !ok {
		return ErrUnknownToken
	}
	if owner != from {
		return ErrNotOwner
	}
	if from != r.operator && !r.approvedAll[from] {
		return ErrNotApproved
	}
	r.owners[tokenID] = to
	return nil
}
