//go:build integration

package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakelabs/staking-ledger/internal/db"
	"github.com/stakelabs/staking-ledger/internal/db/model"
	"github.com/stakelabs/staking-ledger/testutil"
)

func TestSaveTransition(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("ok", func(t *testing.T) {
		doc := model.FromTransitionReceipt(testutil.RandomTransitionReceipt())
		err := testDB.SaveTransition(ctx, doc)
		require.NoError(t, err)

		foundDoc, err := testDB.GetTransitionByID(ctx, doc.TransitionID)
		require.NoError(t, err)
		assert.Equal(t, doc, foundDoc)
	})
	t.Run("duplicate transition id", func(t *testing.T) {
		doc := model.FromTransitionReceipt(testutil.RandomTransitionReceipt())
		err := testDB.SaveTransition(ctx, doc)
		require.NoError(t, err)

		err = testDB.SaveTransition(ctx, doc)
		assert.True(t, db.IsDuplicateKeyError(err))
	})
}

func TestGetTransitionByID(t *testing.T) {
	ctx := t.Context()

	t.Run("not found", func(t *testing.T) {
		doc, err := testDB.GetTransitionByID(ctx, "missing-transition")
		assert.True(t, db.IsNotFoundError(err))
		assert.Nil(t, doc)
	})
}

func TestGetTransitionsByOwner(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	owner := testutil.RandomAccountAddress()

	t.Run("empty", func(t *testing.T) {
		transitions, err := testDB.GetTransitionsByOwner(ctx, owner.String())
		require.NoError(t, err)
		assert.Empty(t, transitions)
	})
	t.Run("newest first", func(t *testing.T) {
		timestamps := []uint64{100, 300, 200}
		for _, ts := range timestamps {
			receipt := testutil.RandomTransitionReceipt()
			receipt.Owner = owner
			receipt.Timestamp = ts

			err := testDB.SaveTransition(ctx, model.FromTransitionReceipt(receipt))
			require.NoError(t, err)
		}
		// transition archived for another owner must not show up
		err := testDB.SaveTransition(ctx, model.FromTransitionReceipt(testutil.RandomTransitionReceipt()))
		require.NoError(t, err)

		transitions, err := testDB.GetTransitionsByOwner(ctx, owner.String())
		require.NoError(t, err)
		require.Len(t, transitions, 3)
		assert.Equal(t, uint64(300), transitions[0].Timestamp)
		assert.Equal(t, uint64(200), transitions[1].Timestamp)
		assert.Equal(t, uint64(100), transitions[2].Timestamp)
	})
}
