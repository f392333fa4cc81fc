package tokenclient

import (
	"context"

	"github.com/stakelabs/staking-ledger/internal/types"
)

// TokenInterface is the narrow protocol this module needs from the token
// contract: operator check, balance check and transfer. Each call is one
// synchronous round trip through the host node.
type TokenInterface interface {
	// IsOperatorOf reports whether the staking contract is authorized to
	// move the owner's tokens on the given token contract.
	IsOperatorOf(
		ctx context.Context,
		owner types.AccountAddress,
		stakingContract types.ContractAddress,
		tokenContract types.ContractAddress,
	) (bool, error)

	// HasBalance reports whether the owner's balance of tokenID on the
	// token contract is at least amount.
	HasBalance(
		ctx context.Context,
		tokenID types.TokenID,
		tokenContract types.ContractAddress,
		amount uint64,
		owner types.AccountAddress,
	) (bool, error)

	// Transfer moves amount of tokenID from one account to another with no
	// additional transfer data.
	Transfer(
		ctx context.Context,
		tokenID types.TokenID,
		tokenContract types.ContractAddress,
		amount uint64,
		from types.AccountAddress,
		to types.AccountAddress,
	) error
}
