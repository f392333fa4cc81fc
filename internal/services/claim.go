package services

import (
	"context"
	"net/http"

	"github.com/stakelabs/staking-ledger/internal/ledger"
	"github.com/stakelabs/staking-ledger/internal/observability/metrics"
	"github.com/stakelabs/staking-ledger/internal/types"
	"github.com/stakelabs/staking-ledger/internal/utils"
)

// Claim pays out the caller's accrued reward. For the fungible variant it
// is behaviorally identical to unstake: the stake is released together with
// the reward. For the NFT variant it pays the reward accrued on the named
// tokens and restarts their accrual, leaving the tokens staked.
func (s *Service) Claim(
	ctx context.Context, caller types.AccountAddress, params *types.ClaimRequest,
) (*types.TransitionReceipt, *types.Error) {
	return runTransitionWithMetrics(types.TransitionClaim, params.Variant(), func() (*types.TransitionReceipt, *types.Error) {
		if err := authorize(caller, params.Owner); err != nil {
			return nil, err
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if params.Variant() == types.VariantNFT {
			return s.claimNFT(ctx, params.Owner, params.TokenContract, params.Tokens)
		}
		return s.unstakeFungible(ctx, types.TransitionClaim, params.Owner, params.TokenContract)
	})
}

func (s *Service) claimNFT(
	ctx context.Context,
	owner types.AccountAddress,
	tokenContract types.ContractAddress,
	tokens []types.TokenID,
) (*types.TransitionReceipt, *types.Error) {
	view := s.nft.Get(owner)

	now := s.clock.NowMillis()
	var principal, totalReward, longestElapsed uint64
	claimed := make([]types.TokenID, 0, len(tokens))
	for _, tokenID := range tokens {
		if utils.Contains(claimed, tokenID) {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest,
				types.TokenAlreadyStaked,
				"duplicate token id in claim request",
			)
		}
		claimed = append(claimed, tokenID)

		stakedStartAt, staked := view.StakedStartAt[tokenID]
		if !staked {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound,
				types.TokenNotFound,
				"token is not staked by the owner",
			)
		}

		elapsed, err := ledger.ElapsedSeconds(stakedStartAt, now)
		if err != nil {
			return nil, mapLedgerError(err)
		}
		reward, err := ledger.Reward(view.StakedPrices[tokenID], elapsed)
		if err != nil {
			return nil, mapLedgerError(err)
		}
		principal += view.StakedPrices[tokenID]
		totalReward += reward
		if elapsed > longestElapsed {
			longestElapsed = elapsed
		}
	}

	// restart accrual before the payout so the snapshot to roll back is the
	// timestamps just erased
	prior, err := s.nft.ResetStartTimes(owner, tokens, now)
	if err != nil {
		return nil, mapLedgerError(err)
	}

	if err := s.token.Transfer(ctx, types.UnitTokenID, tokenContract, totalReward, s.treasury, owner); err != nil {
		s.nft.RestoreStartTimes(owner, prior)
		return nil, tokenError(err)
	}
	metrics.SetTotalStaked(types.VariantNFT.String(), s.nft.TotalStaked())

	receipt := newReceipt(
		types.TransitionClaim, types.VariantNFT,
		owner, principal, tokens, longestElapsed, totalReward, now,
	)
	s.finalizeTransition(ctx, receipt)
	return receipt, nil
}
