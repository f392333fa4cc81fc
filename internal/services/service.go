package services

import (
	"context"
	"sync"
	"time"

	"github.com/stakelabs/staking-ledger/internal/clients/tokenclient"
	"github.com/stakelabs/staking-ledger/internal/config"
	"github.com/stakelabs/staking-ledger/internal/db"
	"github.com/stakelabs/staking-ledger/internal/ledger"
	"github.com/stakelabs/staking-ledger/internal/queue"
	"github.com/stakelabs/staking-ledger/internal/types"
)

// Clock supplies the host time transitions are stamped with, in
// milliseconds. The ledger requires it to be non-decreasing versus
// recorded staking times.
type Clock interface {
	NowMillis() uint64
}

type systemClock struct{}

func (systemClock) NowMillis() uint64 {
	return uint64(time.Now().UnixMilli())
}

// EventPublisher emits committed staking events. Satisfied by
// queue.QueueManager.
type EventPublisher interface {
	PublishStakingEvent(ctx context.Context, event *queue.StakingEvent) error
}

// Service is the staking controller: it owns both ledgers and runs every
// stake, unstake and claim request as one atomic transition. A single mutex
// serializes transitions, preserving the run-to-completion execution model
// the ledger semantics assume.
type Service struct {
	cfg          *config.Config
	db           db.DbInterface
	token        tokenclient.TokenInterface
	queueManager EventPublisher

	fungible *ledger.FungibleLedger
	nft      *ledger.NFTLedger
	clock    Clock
	mu       sync.Mutex

	stakingContract types.ContractAddress
	treasury        types.AccountAddress
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	token tokenclient.TokenInterface,
	qm EventPublisher,
) *Service {
	return &Service{
		cfg:          cfg,
		db:           db,
		token:        token,
		queueManager: qm,
		fungible:     ledger.NewFungibleLedger(),
		nft:          ledger.NewNFTLedger(),
		clock:        systemClock{},
		stakingContract: types.ContractAddress{
			Index:    cfg.Token.StakingContractIndex,
			Subindex: cfg.Token.StakingContractSubindex,
		},
		treasury: types.AccountAddress(cfg.Token.TreasuryAddress),
	}
}
