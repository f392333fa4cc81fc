package db

import (
	"context"
	"time"

	"github.com/stakelabs/staking-ledger/internal/db/model"
	"github.com/stakelabs/staking-ledger/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveTransition(ctx context.Context, transitionDoc *model.TransitionDocument) error {
	return d.run("SaveTransition", func() error {
		return d.db.SaveTransition(ctx, transitionDoc)
	})
}

func (d *DbWithMetrics) GetTransitionByID(ctx context.Context, transitionID string) (result *model.TransitionDocument, err error) {
	//nolint:errcheck
	d.run("GetTransitionByID", func() error {
		result, err = d.db.GetTransitionByID(ctx, transitionID)
		return err
	})
	return
}

func (d *DbWithMetrics) GetTransitionsByOwner(ctx context.Context, owner string) (result []model.TransitionDocument, err error) {
	//nolint:errcheck
	d.run("GetTransitionsByOwner", func() error {
		result, err = d.db.GetTransitionsByOwner(ctx, owner)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	outcome := metrics.Success
	if err != nil {
		outcome = metrics.Error
	}
	metrics.ObserveDbLatency(method, outcome, duration.Seconds())
	return err
}
