package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakelabs/staking-ledger/internal/types"
)

const (
	alice = types.AccountAddress("3kBx2h5Y2veb4hZgAJWPrr8RyQESKm5TjzF3ti1QQ4VSYLwK1G")
	bob   = types.AccountAddress("4AuT5RRmBwcdkLMA6iVjxTDb1FQmxwAh3wWBYTFS1a2kQnh36A")
)

func TestFungibleLedger(t *testing.T) {
	t.Run("insert creates record lazily", func(t *testing.T) {
		l := NewFungibleLedger()
		require.True(t, l.Get(alice).IsEmpty())

		err := l.Insert(alice, 1000, 5_000)
		require.NoError(t, err)

		rec := l.Get(alice)
		assert.Equal(t, uint64(1000), rec.Amount)
		assert.Equal(t, uint64(5_000), rec.StakedStartAt)
		assert.Equal(t, uint64(1000), l.TotalStaked())
	})

	t.Run("re-stake replaces instead of adding", func(t *testing.T) {
		l := NewFungibleLedger()
		require.NoError(t, l.Insert(alice, 1000, 5_000))
		require.NoError(t, l.Insert(alice, 250, 9_000))

		rec := l.Get(alice)
		assert.Equal(t, uint64(250), rec.Amount)
		assert.Equal(t, uint64(9_000), rec.StakedStartAt)
		assert.Equal(t, uint64(250), l.TotalStaked())
	})

	t.Run("remove resets record but keeps the slot", func(t *testing.T) {
		l := NewFungibleLedger()
		require.NoError(t, l.Insert(alice, 1000, 5_000))

		prior, err := l.Remove(alice)
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), prior.Amount)
		assert.Equal(t, uint64(5_000), prior.StakedStartAt)

		assert.True(t, l.Get(alice).IsEmpty())
		assert.Zero(t, l.TotalStaked())

		// slot is reusable
		require.NoError(t, l.Insert(alice, 42, 10_000))
		assert.Equal(t, uint64(42), l.TotalStaked())
	})

	t.Run("remove of an unknown owner is a no-op on the total", func(t *testing.T) {
		l := NewFungibleLedger()
		require.NoError(t, l.Insert(alice, 1000, 5_000))

		prior, err := l.Remove(bob)
		require.NoError(t, err)
		assert.True(t, prior.IsEmpty())
		assert.Equal(t, uint64(1000), l.TotalStaked())
	})

	t.Run("restore reverses a removal", func(t *testing.T) {
		l := NewFungibleLedger()
		require.NoError(t, l.Insert(alice, 1000, 5_000))

		prior, err := l.Remove(alice)
		require.NoError(t, err)
		l.Restore(alice, prior)

		rec := l.Get(alice)
		assert.Equal(t, uint64(1000), rec.Amount)
		assert.Equal(t, uint64(5_000), rec.StakedStartAt)
		assert.Equal(t, uint64(1000), l.TotalStaked())
	})

	t.Run("total tracks the sum across any sequence", func(t *testing.T) {
		l := NewFungibleLedger()

		sum := func() uint64 {
			return l.Get(alice).Amount + l.Get(bob).Amount
		}

		require.NoError(t, l.Insert(alice, 700, 1_000))
		assert.Equal(t, sum(), l.TotalStaked())

		require.NoError(t, l.Insert(bob, 300, 2_000))
		assert.Equal(t, sum(), l.TotalStaked())

		require.NoError(t, l.Insert(alice, 50, 3_000))
		assert.Equal(t, sum(), l.TotalStaked())

		_, err := l.Remove(bob)
		require.NoError(t, err)
		assert.Equal(t, sum(), l.TotalStaked())

		_, err = l.Remove(alice)
		require.NoError(t, err)
		assert.Equal(t, sum(), l.TotalStaked())
		assert.Zero(t, l.TotalStaked())
	})
}

func TestFungibleLedgerElapsedSeconds(t *testing.T) {
	l := NewFungibleLedger()
	require.NoError(t, l.Insert(alice, 1000, 10_000))

	t.Run("floors the millisecond remainder", func(t *testing.T) {
		elapsed, err := l.ElapsedSeconds(alice, 13_999)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), elapsed)
	})

	t.Run("zero elapsed immediately after staking", func(t *testing.T) {
		elapsed, err := l.ElapsedSeconds(alice, 10_000)
		require.NoError(t, err)
		assert.Zero(t, elapsed)
	})

	t.Run("time running backwards is a host violation", func(t *testing.T) {
		_, err := l.ElapsedSeconds(alice, 9_999)
		require.ErrorIs(t, err, ErrTimeReversed)
	})
}
