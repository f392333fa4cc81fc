package testutil

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/stakelabs/staking-ledger/internal/types"
)

const (
	base58Alphabet       = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	accountAddressLength = 50
)

// RandomAccountAddress generates a well-formed base58 account address.
func RandomAccountAddress() types.AccountAddress {
	address := make([]byte, accountAddressLength)
	for i := range address {
		address[i] = base58Alphabet[gofakeit.Number(0, len(base58Alphabet)-1)]
	}
	return types.AccountAddress(address)
}

// RandomTokenID generates a hex-encoded token identifier.
func RandomTokenID() types.TokenID {
	return types.TokenID(fmt.Sprintf("%08x", gofakeit.Uint32()))
}

func RandomContractAddress() types.ContractAddress {
	return types.ContractAddress{
		Index:    uint64(gofakeit.Number(1, 1_000_000)),
		Subindex: 0,
	}
}

func RandomFungibleStakeRequest() *types.StakeRequest {
	return &types.StakeRequest{
		Owner:         RandomAccountAddress(),
		Amount:        uint64(gofakeit.Number(1, 1_000_000_000)),
		TokenContract: RandomContractAddress(),
	}
}

func RandomNFTStakeRequest(numTokens int) *types.StakeRequest {
	tokens := make([]types.TokenStake, 0, numTokens)
	for range numTokens {
		tokens = append(tokens, types.TokenStake{
			TokenID: RandomTokenID(),
			Price:   uint64(gofakeit.Number(1, 1_000_000)),
		})
	}
	return &types.StakeRequest{
		Owner:         RandomAccountAddress(),
		Tokens:        tokens,
		TokenContract: RandomContractAddress(),
	}
}

func RandomTransitionReceipt() *types.TransitionReceipt {
	return &types.TransitionReceipt{
		TransitionID:   uuid.NewString(),
		Kind:           types.TransitionStake,
		Variant:        types.VariantFungible,
		Owner:          RandomAccountAddress(),
		Principal:      uint64(gofakeit.Number(1, 1_000_000_000)),
		ElapsedSeconds: uint64(gofakeit.Number(0, 31_536_000)),
		Reward:         uint64(gofakeit.Number(0, 1_000_000)),
		Timestamp:      uint64(gofakeit.Number(1_600_000_000_000, 1_800_000_000_000)),
	}
}
