package queue

import (
	"github.com/stakelabs/staking-ledger/internal/types"
)

const (
	StakedEventType   = "staking.staked"
	UnstakedEventType = "staking.unstaked"
	ClaimedEventType  = "staking.claimed"
)

// StakingEvent is the message published after a transition commits. Its
// routing key is the event type, so consumers can bind per transition kind.
type StakingEvent struct {
	EventType      string   `json:"event_type"`
	TransitionID   string   `json:"transition_id"`
	Variant        string   `json:"variant"`
	Owner          string   `json:"owner"`
	Principal      uint64   `json:"principal"`
	Tokens         []string `json:"tokens,omitempty"`
	ElapsedSeconds uint64   `json:"elapsed_seconds"`
	Reward         uint64   `json:"reward"`
	Timestamp      uint64   `json:"timestamp"`
}

func (e *StakingEvent) RoutingKey() string {
	return e.EventType
}

func eventType(kind types.TransitionKind) string {
	switch kind {
	case types.TransitionStake:
		return StakedEventType
	case types.TransitionUnstake:
		return UnstakedEventType
	case types.TransitionClaim:
		return ClaimedEventType
	}
	return ""
}

// FromTransitionReceipt builds the published event from a committed receipt.
func FromTransitionReceipt(receipt *types.TransitionReceipt) *StakingEvent {
	tokens := make([]string, 0, len(receipt.Tokens))
	for _, tokenID := range receipt.Tokens {
		tokens = append(tokens, tokenID.String())
	}

	return &StakingEvent{
		EventType:      eventType(receipt.Kind),
		TransitionID:   receipt.TransitionID,
		Variant:        receipt.Variant.String(),
		Owner:          receipt.Owner.String(),
		Principal:      receipt.Principal,
		Tokens:         tokens,
		ElapsedSeconds: receipt.ElapsedSeconds,
		Reward:         receipt.Reward,
		Timestamp:      receipt.Timestamp,
	}
}
