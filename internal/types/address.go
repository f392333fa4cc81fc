package types

import (
	"fmt"
	"strconv"
	"strings"
)

// AccountAddress is the host's opaque account identity, as supplied by the
// execution gateway. The ledger never interprets it beyond equality.
type AccountAddress string

func (a AccountAddress) String() string {
	return string(a)
}

func (a AccountAddress) IsEmpty() bool {
	return a == ""
}

// ContractAddress identifies a contract instance on the host by index and
// subindex, rendered as "<index,subindex>".
type ContractAddress struct {
	Index    uint64 `json:"index"`
	Subindex uint64 `json:"subindex"`
}

func (c ContractAddress) String() string {
	return fmt.Sprintf("<%d,%d>", c.Index, c.Subindex)
}

func (c ContractAddress) IsZero() bool {
	return c.Index == 0 && c.Subindex == 0
}

// ParseContractAddress parses the "<index,subindex>" rendering.
func ParseContractAddress(s string) (ContractAddress, error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return ContractAddress{}, fmt.Errorf("invalid contract address %q", s)
	}
	index, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return ContractAddress{}, fmt.Errorf("invalid contract index in %q: %w", s, err)
	}
	subindex, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return ContractAddress{}, fmt.Errorf("invalid contract subindex in %q: %w", s, err)
	}
	return ContractAddress{Index: index, Subindex: subindex}, nil
}

// TokenID is the hex-encoded token identifier within a CIS2 contract. The
// empty string is the unit token id used by the fungible variant.
type TokenID string

func (t TokenID) String() string {
	return string(t)
}

// UnitTokenID is the token id of the single fungible token type.
const UnitTokenID TokenID = ""
