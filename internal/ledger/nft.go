package ledger

import (
	"sort"
	"sync"

	"github.com/stakelabs/staking-ledger/internal/types"
)

// nftRecord is one owner's stake of non-fungible tokens: the set of staked
// token ids, the cumulative staked price in micro-currency units, and the
// per-token stake timestamps and prices.
type nftRecord struct {
	stakedTokens     map[types.TokenID]struct{}
	stakedTokenPrice uint64
	stakedStartAt    map[types.TokenID]uint64
	stakedPrices     map[types.TokenID]uint64
}

func newNFTRecord() *nftRecord {
	return &nftRecord{
		stakedTokens:  make(map[types.TokenID]struct{}),
		stakedStartAt: make(map[types.TokenID]uint64),
		stakedPrices:  make(map[types.TokenID]uint64),
	}
}

// NFTRecordView is the read-only copy of an owner's record handed out to
// callers; the ledger retains exclusive ownership of the live record.
type NFTRecordView struct {
	StakedTokens     []types.TokenID
	StakedTokenPrice uint64
	StakedStartAt    map[types.TokenID]uint64
	StakedPrices     map[types.TokenID]uint64
}

// TokenSnapshot captures the state Remove erased for one token, for reward
// computation and rollback.
type TokenSnapshot struct {
	TokenID       types.TokenID
	Price         uint64
	StakedStartAt uint64
}

// NFTLedger owns every non-fungible stake record, the global staked set and
// the aggregate staked price. A token id appears in at most one owner's
// record at any time; the global set gates insertion and removal. Mutation
// is serialized; after every operation totalStaked equals the sum of all
// recorded token prices.
type NFTLedger struct {
	mu           sync.Mutex
	records      map[types.AccountAddress]*nftRecord
	globalStaked map[types.TokenID]types.AccountAddress
	totalStaked  uint64
}

func NewNFTLedger() *NFTLedger {
	return &NFTLedger{
		records:      make(map[types.AccountAddress]*nftRecord),
		globalStaked: make(map[types.TokenID]types.AccountAddress),
	}
}

func (l *NFTLedger) record(owner types.AccountAddress) *nftRecord {
	rec, ok := l.records[owner]
	if !ok {
		rec = newNFTRecord()
		l.records[owner] = rec
	}
	return rec
}

// InsertToken stakes one token id for owner at the given price and start
// time. It fails with ErrTokenAlreadyStaked, touching nothing, when the
// token is already in the global staked set under any owner.
func (l *NFTLedger) InsertToken(owner types.AccountAddress, tokenID types.TokenID, price, stakedAt uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, staked := l.globalStaked[tokenID]; staked {
		return ErrTokenAlreadyStaked
	}

	rec := l.record(owner)
	rec.stakedTokens[tokenID] = struct{}{}
	rec.stakedStartAt[tokenID] = stakedAt
	rec.stakedPrices[tokenID] = price
	rec.stakedTokenPrice += price
	l.globalStaked[tokenID] = owner
	l.totalStaked += price
	return nil
}

// RemoveToken releases one of the owner's staked tokens and decrements the
// aggregate by the price recorded at stake time. Removing a token the owner
// does not have staked fails with ErrTokenNotStaked and touches nothing.
func (l *NFTLedger) RemoveToken(owner types.AccountAddress, tokenID types.TokenID) (TokenSnapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stakedBy, staked := l.globalStaked[tokenID]
	if !staked || stakedBy != owner {
		return TokenSnapshot{}, ErrTokenNotStaked
	}

	rec := l.record(owner)
	snapshot := TokenSnapshot{
		TokenID:       tokenID,
		Price:         rec.stakedPrices[tokenID],
		StakedStartAt: rec.stakedStartAt[tokenID],
	}
	delete(rec.stakedTokens, tokenID)
	delete(rec.stakedStartAt, tokenID)
	delete(rec.stakedPrices, tokenID)
	rec.stakedTokenPrice -= snapshot.Price
	delete(l.globalStaked, tokenID)
	l.totalStaked -= snapshot.Price
	return snapshot, nil
}

// RestoreToken reinstates a token previously released by RemoveToken,
// reversing the removal. It is the rollback half of the controller's
// transaction boundary.
func (l *NFTLedger) RestoreToken(owner types.AccountAddress, snapshot TokenSnapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.record(owner)
	rec.stakedTokens[snapshot.TokenID] = struct{}{}
	rec.stakedStartAt[snapshot.TokenID] = snapshot.StakedStartAt
	rec.stakedPrices[snapshot.TokenID] = snapshot.Price
	rec.stakedTokenPrice += snapshot.Price
	l.globalStaked[snapshot.TokenID] = owner
	l.totalStaked += snapshot.Price
}

// RecordedPrice returns the price recorded for one of the owner's staked
// tokens.
func (l *NFTLedger) RecordedPrice(owner types.AccountAddress, tokenID types.TokenID) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if stakedBy, staked := l.globalStaked[tokenID]; !staked || stakedBy != owner {
		return 0, ErrTokenNotStaked
	}
	return l.records[owner].stakedPrices[tokenID], nil
}

// ResetStartTimes moves the accrual start of the owner's given tokens to
// nowMillis, returning the erased timestamps for rollback. No token may be
// missing from the owner's record.
func (l *NFTLedger) ResetStartTimes(owner types.AccountAddress, tokenIDs []types.TokenID, nowMillis uint64) (map[types.TokenID]uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[owner]
	if !ok {
		return nil, ErrTokenNotStaked
	}
	for _, tokenID := range tokenIDs {
		if _, staked := rec.stakedTokens[tokenID]; !staked {
			return nil, ErrTokenNotStaked
		}
	}

	prior := make(map[types.TokenID]uint64, len(tokenIDs))
	for _, tokenID := range tokenIDs {
		prior[tokenID] = rec.stakedStartAt[tokenID]
		rec.stakedStartAt[tokenID] = nowMillis
	}
	return prior, nil
}

// RestoreStartTimes reverses ResetStartTimes with the timestamps it
// returned.
func (l *NFTLedger) RestoreStartTimes(owner types.AccountAddress, startTimes map[types.TokenID]uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[owner]
	if !ok {
		return
	}
	for tokenID, stakedAt := range startTimes {
		if _, staked := rec.stakedTokens[tokenID]; staked {
			rec.stakedStartAt[tokenID] = stakedAt
		}
	}
}

// Get returns a copy of the owner's record with the token ids sorted.
// Owners never staked report the empty view.
func (l *NFTLedger) Get(owner types.AccountAddress) NFTRecordView {
	l.mu.Lock()
	defer l.mu.Unlock()

	view := NFTRecordView{
		StakedStartAt: make(map[types.TokenID]uint64),
		StakedPrices:  make(map[types.TokenID]uint64),
	}
	rec, ok := l.records[owner]
	if !ok {
		return view
	}

	view.StakedTokenPrice = rec.stakedTokenPrice
	view.StakedTokens = make([]types.TokenID, 0, len(rec.stakedTokens))
	for tokenID := range rec.stakedTokens {
		view.StakedTokens = append(view.StakedTokens, tokenID)
		view.StakedStartAt[tokenID] = rec.stakedStartAt[tokenID]
		view.StakedPrices[tokenID] = rec.stakedPrices[tokenID]
	}
	sort.Slice(view.StakedTokens, func(i, j int) bool {
		return view.StakedTokens[i] < view.StakedTokens[j]
	})
	return view
}

// IsStaked reports whether the token id is in the global staked set.
func (l *NFTLedger) IsStaked(tokenID types.TokenID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, staked := l.globalStaked[tokenID]
	return staked
}

// TotalStaked returns the aggregate staked price across all owners.
func (l *NFTLedger) TotalStaked() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalStaked
}
