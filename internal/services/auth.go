package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/stakelabs/staking-ledger/internal/ledger"
	"github.com/stakelabs/staking-ledger/internal/types"
)

// authorize enforces that the caller is exactly the claimed owner. This is
// checked before any other side effect in every handler; delegation of
// token movement is granted separately through operatorOf.
func authorize(caller, owner types.AccountAddress) *types.Error {
	if caller.IsEmpty() || caller != owner {
		return types.NewErrorWithMsg(
			http.StatusForbidden,
			types.Unauthorized,
			"caller is not the stake owner",
		)
	}
	return nil
}

// ensureBalance verifies the owner holds at least amount of tokenID on the
// token contract.
func (s *Service) ensureBalance(
	ctx context.Context,
	tokenID types.TokenID,
	tokenContract types.ContractAddress,
	amount uint64,
	owner types.AccountAddress,
) *types.Error {
	hasBalance, err := s.token.HasBalance(ctx, tokenID, tokenContract, amount, owner)
	if err != nil {
		return tokenError(err)
	}
	if !hasBalance {
		return types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.NoBalance,
			"insufficient balance for requested stake",
		)
	}
	return nil
}

// ensureIsOperator verifies the staking contract is registered as an
// operator of the owner's tokens on the token contract.
func (s *Service) ensureIsOperator(
	ctx context.Context,
	owner types.AccountAddress,
	tokenContract types.ContractAddress,
) *types.Error {
	isOperator, err := s.token.IsOperatorOf(ctx, owner, s.stakingContract, tokenContract)
	if err != nil {
		return tokenError(err)
	}
	if !isOperator {
		return types.NewErrorWithMsg(
			http.StatusForbidden,
			types.NotOperator,
			"staking contract is not an operator of the owner's tokens",
		)
	}
	return nil
}

// tokenError passes through typed token client errors and wraps anything
// else as an internal failure.
func tokenError(err error) *types.Error {
	var typed *types.Error
	if errors.As(err, &typed) {
		return typed
	}
	return types.NewInternalServiceError(err)
}

// mapLedgerError converts ledger sentinel errors to the protocol taxonomy.
// Staked-set violations surface as TOKEN_ALREADY_STAKED in both directions;
// time and arithmetic contract violations are internal failures.
func mapLedgerError(err error) *types.Error {
	switch {
	case errors.Is(err, ledger.ErrTokenAlreadyStaked), errors.Is(err, ledger.ErrTokenNotStaked):
		return types.NewError(http.StatusBadRequest, types.TokenAlreadyStaked, err)
	default:
		return types.NewInternalServiceError(err)
	}
}
