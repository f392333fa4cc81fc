package services

import (
	"context"
	"net/http"

	"github.com/stakelabs/staking-ledger/internal/ledger"
	"github.com/stakelabs/staking-ledger/internal/observability/metrics"
	"github.com/stakelabs/staking-ledger/internal/types"
)

// Unstake releases the caller's staked tokens and pays out the accrued
// reward from the treasury account. The ledger mutation and the payout
// transfer form one transition: a failed transfer restores the ledger to
// its prior state before the error surfaces.
func (s *Service) Unstake(
	ctx context.Context, caller types.AccountAddress, params *types.UnstakeRequest,
) (*types.TransitionReceipt, *types.Error) {
	return runTransitionWithMetrics(types.TransitionUnstake, params.Variant(), func() (*types.TransitionReceipt, *types.Error) {
		if err := authorize(caller, params.Owner); err != nil {
			return nil, err
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if params.Variant() == types.VariantNFT {
			return s.unstakeNFT(ctx, params.Owner, params.TokenContract, params.Tokens)
		}
		return s.unstakeFungible(ctx, types.TransitionUnstake, params.Owner, params.TokenContract)
	})
}

// unstakeFungible is shared by the unstake and claim entry points, which
// are behaviorally identical for the fungible variant.
func (s *Service) unstakeFungible(
	ctx context.Context,
	kind types.TransitionKind,
	owner types.AccountAddress,
	tokenContract types.ContractAddress,
) (*types.TransitionReceipt, *types.Error) {
	prior, err := s.fungible.Remove(owner)
	if err != nil {
		return nil, mapLedgerError(err)
	}
	if prior.IsEmpty() {
		return nil, types.NewErrorWithMsg(
			http.StatusNotFound,
			types.TokenNotFound,
			"owner has no active stake",
		)
	}

	now := s.clock.NowMillis()
	elapsed, err := ledger.ElapsedSeconds(prior.StakedStartAt, now)
	if err != nil {
		s.fungible.Restore(owner, prior)
		return nil, mapLedgerError(err)
	}
	reward, err := ledger.Reward(prior.Amount, elapsed)
	if err != nil {
		s.fungible.Restore(owner, prior)
		return nil, mapLedgerError(err)
	}

	if err := s.token.Transfer(ctx, types.UnitTokenID, tokenContract, reward, s.treasury, owner); err != nil {
		s.fungible.Restore(owner, prior)
		return nil, tokenError(err)
	}
	metrics.SetTotalStaked(types.VariantFungible.String(), s.fungible.TotalStaked())

	receipt := newReceipt(kind, types.VariantFungible, owner, prior.Amount, nil, elapsed, reward, now)
	s.finalizeTransition(ctx, receipt)
	return receipt, nil
}

func (s *Service) unstakeNFT(
	ctx context.Context,
	owner types.AccountAddress,
	tokenContract types.ContractAddress,
	tokens []types.TokenID,
) (*types.TransitionReceipt, *types.Error) {
	snapshots := make([]ledger.TokenSnapshot, 0, len(tokens))
	restore := func() {
		for _, snapshot := range snapshots {
			s.nft.RestoreToken(owner, snapshot)
		}
	}

	for _, tokenID := range tokens {
		snapshot, err := s.nft.RemoveToken(owner, tokenID)
		if err != nil {
			restore()
			return nil, mapLedgerError(err)
		}
		snapshots = append(snapshots, snapshot)
	}

	now := s.clock.NowMillis()
	var principal, totalReward, longestElapsed uint64
	for _, snapshot := range snapshots {
		elapsed, err := ledger.ElapsedSeconds(snapshot.StakedStartAt, now)
		if err != nil {
			restore()
			return nil, mapLedgerError(err)
		}
		reward, err := ledger.Reward(snapshot.Price, elapsed)
		if err != nil {
			restore()
			return nil, mapLedgerError(err)
		}
		principal += snapshot.Price
		totalReward += reward
		if elapsed > longestElapsed {
			longestElapsed = elapsed
		}
	}

	if err := s.token.Transfer(ctx, types.UnitTokenID, tokenContract, totalReward, s.treasury, owner); err != nil {
		restore()
		return nil, tokenError(err)
	}
	metrics.SetTotalStaked(types.VariantNFT.String(), s.nft.TotalStaked())

	receipt := newReceipt(
		types.TransitionUnstake, types.VariantNFT,
		owner, principal, tokens, longestElapsed, totalReward, now,
	)
	s.finalizeTransition(ctx, receipt)
	return receipt, nil
}
