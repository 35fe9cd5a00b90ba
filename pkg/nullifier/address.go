package nullifier

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

const addressBits = 8 * common.AddressLength

// IsAddress reports whether s is "0x" followed by exactly 40 hex characters
// of either case.
func IsAddress(s string) bool {
	return len(s) == 2+2*common.AddressLength && strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// AddressToDecimal renders a 0x-prefixed address as the decimal integer the
// circuit takes as its address input.
func AddressToDecimal(address string) (string, error) {
	if !IsAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	var u uint256.Int
	u.SetBytes20(common.HexToAddress(address).Bytes())
	return u.Dec(), nil
}

// decimalToAddress maps a positive integer of at most 160 bits back to a
// canonical lowercase 0x address. The returned reason is empty on success.
func decimalToAddress(v *big.Int) (string, string) {
	if v.Sign() <= 0 {
		return "", "player address must be a positive integer"
	}
	if v.BitLen() > addressBits {
		return "", fmt.Sprintf("player address exceeds %d bits", addressBits)
	}
	u, _ := uint256.FromBig(v)
	b := u.Bytes20()
	return "0x" + hex.EncodeToString(b[:]), ""
}
