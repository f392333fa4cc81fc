package services

import (
	"context"
	"net/http"

	"github.com/stakelabs/staking-ledger/internal/db"
	"github.com/stakelabs/staking-ledger/internal/db/model"
	"github.com/stakelabs/staking-ledger/internal/types"
)

// OwnerStake is the read-only view of one owner's position in both ledgers.
type OwnerStake struct {
	Owner    types.AccountAddress `json:"owner"`
	Fungible FungibleStakeView    `json:"fungible"`
	NFT      NFTStakeView         `json:"nft"`
}

type FungibleStakeView struct {
	Amount        uint64 `json:"amount"`
	StakedStartAt uint64 `json:"staked_start_at"`
}

type NFTStakeView struct {
	StakedTokens     []types.TokenID          `json:"staked_tokens"`
	StakedTokenPrice uint64                   `json:"staked_token_price"`
	StakedStartAt    map[types.TokenID]uint64 `json:"staked_start_at"`
	StakedPrices     map[types.TokenID]uint64 `json:"staked_prices"`
}

// Totals reports the aggregate staked amount/price per variant.
type Totals struct {
	FungibleTotalStaked uint64 `json:"fungible_total_staked"`
	NFTTotalStaked      uint64 `json:"nft_total_staked"`
}

func (s *Service) GetStake(owner types.AccountAddress) *OwnerStake {
	fungible := s.fungible.Get(owner)
	nft := s.nft.Get(owner)

	return &OwnerStake{
		Owner: owner,
		Fungible: FungibleStakeView{
			Amount:        fungible.Amount,
			StakedStartAt: fungible.StakedStartAt,
		},
		NFT: NFTStakeView{
			StakedTokens:     nft.StakedTokens,
			StakedTokenPrice: nft.StakedTokenPrice,
			StakedStartAt:    nft.StakedStartAt,
			StakedPrices:     nft.StakedPrices,
		},
	}
}

func (s *Service) GetTotals() *Totals {
	return &Totals{
		FungibleTotalStaked: s.fungible.TotalStaked(),
		NFTTotalStaked:      s.nft.TotalStaked(),
	}
}

// GetTransitions returns the owner's archived transitions, newest first.
func (s *Service) GetTransitions(
	ctx context.Context, owner types.AccountAddress,
) ([]model.TransitionDocument, *types.Error) {
	transitions, err := s.db.GetTransitionsByOwner(ctx, owner.String())
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}
	return transitions, nil
}

// GetTransition returns one archived transition by its id.
func (s *Service) GetTransition(
	ctx context.Context, transitionID string,
) (*model.TransitionDocument, *types.Error) {
	doc, err := s.db.GetTransitionByID(ctx, transitionID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewError(http.StatusNotFound, types.TokenNotFound, err)
		}
		return nil, types.NewInternalServiceError(err)
	}
	return doc, nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
