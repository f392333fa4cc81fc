package model

import (
	"github.com/stakelabs/staking-ledger/internal/types"
)

const TransitionCollection = "transition"

// TransitionDocument is the archived form of a committed ledger transition.
// The archive is observational: the in-memory ledger remains the source of
// truth, the archive is for querying history.
type TransitionDocument struct {
	TransitionID   string   `bson:"_id"` // Primary key
	Kind           string   `bson:"kind"`
	Variant        string   `bson:"variant"`
	Owner          string   `bson:"owner"`
	Principal      uint64   `bson:"principal"`
	Tokens         []string `bson:"tokens,omitempty"`
	ElapsedSeconds uint64   `bson:"elapsed_seconds"`
	Reward         uint64   `bson:"reward"`
	Timestamp      uint64   `bson:"timestamp"`
}

func FromTransitionReceipt(receipt *types.TransitionReceipt) *TransitionDocument {
	tokens := make([]string, 0, len(receipt.Tokens))
	for _, tokenID := range receipt.Tokens {
		tokens = append(tokens, tokenID.String())
	}

	return &TransitionDocument{
		TransitionID:   receipt.TransitionID,
		Kind:           receipt.Kind.String(),
		Variant:        receipt.Variant.String(),
		Owner:          receipt.Owner.String(),
		Principal:      receipt.Principal,
		Tokens:         tokens,
		ElapsedSeconds: receipt.ElapsedSeconds,
		Reward:         receipt.Reward,
		Timestamp:      receipt.Timestamp,
	}
}
