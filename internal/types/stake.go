package types

// Variant selects which of the two parallel staking ledgers a request
// targets.
type Variant string

const (
	VariantFungible Variant = "FUNGIBLE"
	VariantNFT      Variant = "NFT"
)

func (v Variant) String() string {
	return string(v)
}

// TokenStake pairs a token identifier with the price recorded for it, in
// micro-currency units.
type TokenStake struct {
	TokenID TokenID `json:"token_id"`
	Price   uint64  `json:"price"`
}

// StakeRequest is the inbound parameter of the stake entry point. A request
// carrying Tokens targets the NFT ledger; one carrying Amount targets the
// fungible ledger.
type StakeRequest struct {
	Owner         AccountAddress  `json:"owner"`
	Amount        uint64          `json:"amount,omitempty"`
	Tokens        []TokenStake    `json:"tokens,omitempty"`
	TokenContract ContractAddress `json:"token_contract"`
}

func (r *StakeRequest) Variant() Variant {
	if len(r.Tokens) > 0 {
		return VariantNFT
	}
	return VariantFungible
}

// UnstakeRequest is the inbound parameter of the unstake entry point.
type UnstakeRequest struct {
	Owner         AccountAddress  `json:"owner"`
	TokenContract ContractAddress `json:"token_contract"`
	Tokens        []TokenID       `json:"tokens,omitempty"`
}

func (r *UnstakeRequest) Variant() Variant {
	if len(r.Tokens) > 0 {
		return VariantNFT
	}
	return VariantFungible
}

// ClaimRequest is the inbound parameter of the claim entry point.
type ClaimRequest struct {
	Owner         AccountAddress  `json:"owner"`
	TokenContract ContractAddress `json:"token_contract,omitempty"`
	Tokens        []TokenID       `json:"tokens,omitempty"`
}

func (r *ClaimRequest) Variant() Variant {
	if len(r.Tokens) > 0 {
		return VariantNFT
	}
	return VariantFungible
}

// TransitionKind names the three state transitions of the ledger.
type TransitionKind string

const (
	TransitionStake   TransitionKind = "STAKE"
	TransitionUnstake TransitionKind = "UNSTAKE"
	TransitionClaim   TransitionKind = "CLAIM"
)

func (k TransitionKind) String() string {
	return string(k)
}

// TransitionReceipt is returned by a committed transition and is the shape
// archived and published after commit.
type TransitionReceipt struct {
	TransitionID   string         `json:"transition_id"`
	Kind           TransitionKind `json:"kind"`
	Variant        Variant        `json:"variant"`
	Owner          AccountAddress `json:"owner"`
	Principal      uint64         `json:"principal"`
	Tokens         []TokenID      `json:"tokens,omitempty"`
	ElapsedSeconds uint64         `json:"elapsed_seconds"`
	Reward         uint64         `json:"reward"`
	Timestamp      uint64         `json:"timestamp"`
}
