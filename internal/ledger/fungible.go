package ledger

import (
	"sync"

	"github.com/stakelabs/staking-ledger/internal/types"
)

// FungibleRecord is one owner's stake of the fungible token: the staked
// amount and the millisecond timestamp accrual started at. A record whose
// amount is zero is an empty slot kept for reuse, never deleted.
type FungibleRecord struct {
	Amount        uint64
	StakedStartAt uint64
}

func (r FungibleRecord) IsEmpty() bool {
	return r.Amount == 0
}

// FungibleLedger owns every fungible stake record plus the aggregate total.
// All reads and writes go through its methods; mutation is serialized so
// the aggregate invariant (totalStaked == sum of record amounts) holds
// after every operation.
type FungibleLedger struct {
	mu          sync.Mutex
	records     map[types.AccountAddress]*FungibleRecord
	totalStaked uint64
}

func NewFungibleLedger() *FungibleLedger {
	return &FungibleLedger{
		records: make(map[types.AccountAddress]*FungibleRecord),
	}
}

// record returns the owner's record, creating an empty slot on first use.
// Creation is idempotent and has no observable effect until mutated.
func (l *FungibleLedger) record(owner types.AccountAddress) *FungibleRecord {
	rec, ok := l.records[owner]
	if !ok {
		rec = &FungibleRecord{}
		l.records[owner] = rec
	}
	return rec
}

// Insert records a stake of amount for owner starting at stakedAt
// (milliseconds). Re-staking replaces the record rather than adding to it;
// the aggregate is adjusted by the difference so it keeps tracking the sum
// of active amounts.
func (l *FungibleLedger) Insert(owner types.AccountAddress, amount, stakedAt uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.record(owner)
	l.totalStaked -= rec.Amount
	l.totalStaked += amount
	rec.Amount = amount
	rec.StakedStartAt = stakedAt
	return nil
}

// Remove resets the owner's record to the empty slot and decrements the
// aggregate by its prior amount. The prior record is returned for reward
// computation and rollback.
func (l *FungibleLedger) Remove(owner types.AccountAddress) (FungibleRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.record(owner)
	prior := *rec
	l.totalStaked -= rec.Amount
	rec.Amount = 0
	rec.StakedStartAt = 0
	return prior, nil
}

// Restore reinstates a record previously returned by Remove, reversing the
// removal. It is the rollback half of the transaction boundary the
// controller provides around payout transfers.
func (l *FungibleLedger) Restore(owner types.AccountAddress, prior FungibleRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.record(owner)
	l.totalStaked -= rec.Amount
	l.totalStaked += prior.Amount
	*rec = prior
}

// Get returns a copy of the owner's record. Owners never staked report the
// empty record.
func (l *FungibleLedger) Get(owner types.AccountAddress) FungibleRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rec, ok := l.records[owner]; ok {
		return *rec
	}
	return FungibleRecord{}
}

// ElapsedSeconds reports whole seconds between the owner's staking start
// and nowMillis.
func (l *FungibleLedger) ElapsedSeconds(owner types.AccountAddress, nowMillis uint64) (uint64, error) {
	return ElapsedSeconds(l.Get(owner).StakedStartAt, nowMillis)
}

// TotalStaked returns the aggregate staked amount across all owners.
func (l *FungibleLedger) TotalStaked() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalStaked
}
