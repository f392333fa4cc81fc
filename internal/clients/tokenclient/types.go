package tokenclient

import (
	"github.com/stakelabs/staking-ledger/internal/types"
)

// Entry point names of the token contract's standard interface.
const (
	OperatorOfEntrypointName = "operatorOf"
	BalanceOfEntrypointName  = "balanceOf"
	TransferEntrypointName   = "transfer"
)

// OperatorOfQuery asks whether address is an operator of owner's tokens.
type OperatorOfQuery struct {
	Owner   string                `json:"owner"`
	Address types.ContractAddress `json:"address"`
}

type OperatorOfQueryParams struct {
	Queries []OperatorOfQuery `json:"queries"`
}

// OperatorOfQueryResponse carries one boolean per query, in order.
type OperatorOfQueryResponse []bool

// BalanceOfQuery asks for owner's balance of one token id.
type BalanceOfQuery struct {
	TokenID types.TokenID `json:"token_id"`
	Address string        `json:"address"`
}

type BalanceOfQueryParams struct {
	Queries []BalanceOfQuery `json:"queries"`
}

// BalanceOfQueryResponse carries one amount per query, in order. Amounts
// are decimal strings; token amounts exceed what JSON numbers round-trip.
type BalanceOfQueryResponse []string

// Transfer is a single transfer instruction.
type Transfer struct {
	TokenID types.TokenID `json:"token_id"`
	Amount  string        `json:"amount"`
	From    string        `json:"from"`
	To      string        `json:"to"`
	Data    string        `json:"data"`
}

type TransferParams []Transfer

// TransferResponse is the empty acknowledgement of a dispatched transfer.
type TransferResponse struct{}
