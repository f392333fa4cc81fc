package pkg

import (
	"fmt"
	"strings"
)

// Host account addresses are base58-check strings of a fixed length. The
// ledger treats them as opaque identities; validation only guards against
// obviously malformed input reaching the ledger keyspace.
const (
	accountAddressLength = 50
	base58Alphabet       = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

func ValidateAccountAddress(address string) error {
	if len(address) != accountAddressLength {
		return fmt.Errorf("account address must be %d characters, got %d", accountAddressLength, len(address))
	}
	for _, r := range address {
		if !strings.ContainsRune(base58Alphabet, r) {
			return fmt.Errorf("account address contains non-base58 character %q", r)
		}
	}
	return nil
}
