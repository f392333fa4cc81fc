package services

import (
	"context"
	"net/http"

	"github.com/stakelabs/staking-ledger/internal/observability/metrics"
	"github.com/stakelabs/staking-ledger/internal/types"
	"github.com/stakelabs/staking-ledger/internal/utils"
)

// Stake deposits the caller's tokens into the ledger and starts reward
// accrual. The transition commits only if the caller is the owner, the
// balance and operator preconditions hold against the token contract, and
// the ledger accepts the insert; any failure leaves the ledger untouched.
func (s *Service) Stake(
	ctx context.Context, caller types.AccountAddress, params *types.StakeRequest,
) (*types.TransitionReceipt, *types.Error) {
	return runTransitionWithMetrics(types.TransitionStake, params.Variant(), func() (*types.TransitionReceipt, *types.Error) {
		if err := authorize(caller, params.Owner); err != nil {
			return nil, err
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if params.Variant() == types.VariantNFT {
			return s.stakeNFT(ctx, params)
		}
		return s.stakeFungible(ctx, params)
	})
}

func (s *Service) stakeFungible(
	ctx context.Context, params *types.StakeRequest,
) (*types.TransitionReceipt, *types.Error) {
	if err := s.ensureBalance(ctx, types.UnitTokenID, params.TokenContract, params.Amount, params.Owner); err != nil {
		return nil, err
	}
	if err := s.ensureIsOperator(ctx, params.Owner, params.TokenContract); err != nil {
		return nil, err
	}

	now := s.clock.NowMillis()
	if err := s.fungible.Insert(params.Owner, params.Amount, now); err != nil {
		return nil, mapLedgerError(err)
	}
	metrics.SetTotalStaked(types.VariantFungible.String(), s.fungible.TotalStaked())

	receipt := newReceipt(
		types.TransitionStake, types.VariantFungible,
		params.Owner, params.Amount, nil, 0, 0, now,
	)
	s.finalizeTransition(ctx, receipt)
	return receipt, nil
}

func (s *Service) stakeNFT(
	ctx context.Context, params *types.StakeRequest,
) (*types.TransitionReceipt, *types.Error) {
	tokenIDs := make([]types.TokenID, 0, len(params.Tokens))
	for _, token := range params.Tokens {
		if utils.Contains(tokenIDs, token.TokenID) {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest,
				types.TokenAlreadyStaked,
				"duplicate token id in stake request",
			)
		}
		tokenIDs = append(tokenIDs, token.TokenID)
	}

	for _, token := range params.Tokens {
		if s.nft.IsStaked(token.TokenID) {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest,
				types.TokenAlreadyStaked,
				"token is already staked",
			)
		}
	}

	for _, token := range params.Tokens {
		if err := s.ensureBalance(ctx, token.TokenID, params.TokenContract, 1, params.Owner); err != nil {
			return nil, err
		}
	}
	if err := s.ensureIsOperator(ctx, params.Owner, params.TokenContract); err != nil {
		return nil, err
	}

	now := s.clock.NowMillis()
	var principal uint64
	inserted := make([]types.TokenID, 0, len(params.Tokens))
	for _, token := range params.Tokens {
		if err := s.nft.InsertToken(params.Owner, token.TokenID, token.Price, now); err != nil {
			for _, tokenID := range inserted {
				// removal of a token inserted in this same transition cannot fail
				_, _ = s.nft.RemoveToken(params.Owner, tokenID)
			}
			return nil, mapLedgerError(err)
		}
		inserted = append(inserted, token.TokenID)
		principal += token.Price
	}
	metrics.SetTotalStaked(types.VariantNFT.String(), s.nft.TotalStaked())

	receipt := newReceipt(
		types.TransitionStake, types.VariantNFT,
		params.Owner, principal, tokenIDs, 0, 0, now,
	)
	s.finalizeTransition(ctx, receipt)
	return receipt, nil
}
