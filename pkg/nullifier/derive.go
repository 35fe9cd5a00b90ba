package nullifier

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"xpclaim/pkg/field"
)

// DeriveNullifier hashes commitment and secret with h and reduces the
// digest into the field. It returns the nullifier in decimal and the
// unreduced digest in hex.
func DeriveNullifier(h Hasher, commitment, secret string) (nullifier, nullifierHash string, err error) {
	digest, err := h.Sum(commitment, secret)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", h.Name(), err)
	}
	n := field.Reduce(new(big.Int).SetBytes(digest))
	if !field.InRange(n) {
		return "", "", fmt.Errorf("%w: digest reduced to zero", ErrInvalidNullifierFormat)
	}
	return n.String(), hex.EncodeToString(digest), nil
}
