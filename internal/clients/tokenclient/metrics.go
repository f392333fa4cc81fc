package tokenclient

import (
	"context"
	"time"

	"github.com/stakelabs/staking-ledger/internal/observability/metrics"
	"github.com/stakelabs/staking-ledger/internal/types"
)

type tokenClientWithMetrics struct {
	token TokenInterface
}

func NewTokenClientWithMetrics(token TokenInterface) TokenInterface {
	return &tokenClientWithMetrics{token: token}
}

func (t *tokenClientWithMetrics) IsOperatorOf(
	ctx context.Context,
	owner types.AccountAddress,
	stakingContract types.ContractAddress,
	tokenContract types.ContractAddress,
) (bool, error) {
	return runTokenClientMethodWithMetrics("IsOperatorOf", func() (bool, error) {
		return t.token.IsOperatorOf(ctx, owner, stakingContract, tokenContract)
	})
}

func (t *tokenClientWithMetrics) HasBalance(
	ctx context.Context,
	tokenID types.TokenID,
	tokenContract types.ContractAddress,
	amount uint64,
	owner types.AccountAddress,
) (bool, error) {
	return runTokenClientMethodWithMetrics("HasBalance", func() (bool, error) {
		return t.token.HasBalance(ctx, tokenID, tokenContract, amount, owner)
	})
}

func (t *tokenClientWithMetrics) Transfer(
	ctx context.Context,
	tokenID types.TokenID,
	tokenContract types.ContractAddress,
	amount uint64,
	from types.AccountAddress,
	to types.AccountAddress,
) error {
	_, err := runTokenClientMethodWithMetrics("Transfer", func() (struct{}, error) {
		return struct{}{}, t.token.Transfer(ctx, tokenID, tokenContract, amount, from, to)
	})
	return err
}

func runTokenClientMethodWithMetrics[T any](method string, call func() (T, error)) (T, error) {
	start := time.Now()
	result, err := call()
	outcome := metrics.Success
	if err != nil {
		outcome = metrics.Error
	}
	metrics.ObserveTokenClientLatency(method, outcome, time.Since(start).Seconds())
	return result, err
}
