package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/stakelabs/staking-ledger/internal/db"
	"github.com/stakelabs/staking-ledger/internal/db/model"
	"github.com/stakelabs/staking-ledger/internal/observability/metrics"
	"github.com/stakelabs/staking-ledger/internal/queue"
	"github.com/stakelabs/staking-ledger/internal/types"
)

func newReceipt(
	kind types.TransitionKind,
	variant types.Variant,
	owner types.AccountAddress,
	principal uint64,
	tokens []types.TokenID,
	elapsedSeconds, reward, timestamp uint64,
) *types.TransitionReceipt {
	return &types.TransitionReceipt{
		TransitionID:   uuid.NewString(),
		Kind:           kind,
		Variant:        variant,
		Owner:          owner,
		Principal:      principal,
		Tokens:         tokens,
		ElapsedSeconds: elapsedSeconds,
		Reward:         reward,
		Timestamp:      timestamp,
	}
}

// finalizeTransition publishes and archives a committed receipt. Both sinks
// are observational: a failure is logged and counted, the transition stays
// committed.
func (s *Service) finalizeTransition(ctx context.Context, receipt *types.TransitionReceipt) {
	if err := s.queueManager.PublishStakingEvent(ctx, queue.FromTransitionReceipt(receipt)); err != nil {
		metrics.RecordQueueSendError()
		log.Ctx(ctx).Error().Err(err).
			Str("transition_id", receipt.TransitionID).
			Msg("failed to publish staking event")
	}

	if err := s.db.SaveTransition(ctx, model.FromTransitionReceipt(receipt)); err != nil && !db.IsDuplicateKeyError(err) {
		log.Ctx(ctx).Error().Err(err).
			Str("transition_id", receipt.TransitionID).
			Msg("failed to archive transition")
	}
}

// runTransitionWithMetrics executes one transition handler and records its
// duration and outcome.
func runTransitionWithMetrics(
	kind types.TransitionKind,
	variant types.Variant,
	f func() (*types.TransitionReceipt, *types.Error),
) (*types.TransitionReceipt, *types.Error) {
	startTime := time.Now()
	receipt, err := f()

	outcome := metrics.Success
	if err != nil {
		outcome = metrics.Error
	}
	metrics.ObserveTransitionDuration(kind.String(), variant.String(), outcome, time.Since(startTime).Seconds())

	return receipt, err
}
