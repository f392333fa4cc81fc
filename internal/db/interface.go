package db

import (
	"context"

	"github.com/stakelabs/staking-ledger/internal/db/model"
)

type DbInterface interface {
	Ping(ctx context.Context) error
	SaveTransition(ctx context.Context, transitionDoc *model.TransitionDocument) error
	GetTransitionByID(ctx context.Context, transitionID string) (*model.TransitionDocument, error)
	GetTransitionsByOwner(ctx context.Context, owner string) ([]model.TransitionDocument, error)
}
