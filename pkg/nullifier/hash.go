package nullifier

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/minio/sha256-simd"

	"xpclaim/pkg/field"
)

// Hash scheme names accepted by HasherByName.
const (
	SchemeDoubleSHA256 = "sha256d"
	SchemeMiMC         = "mimc"
)

// Hasher folds a commitment and a player secret, both hex strings, into a
// 256-bit digest that is then reduced into the BN254 scalar field.
type Hasher interface {
	Name() string
	Sum(commitment, secret string) ([]byte, error)
}

// DoubleSHA256 is the default scheme: SHA256(SHA256(commitment || secret))
// where || is textual concatenation of the two hex strings. Stored
// commitments and deployed verifiers depend on the text form; hashing the
// decoded digest bytes instead yields different nullifiers.
var DoubleSHA256 Hasher = doubleSHA256{}

// MiMC hashes the two values as BN254 field elements with MiMC, the same
// relation circuits/claim enforces. Its digest is already a field element.
var MiMC Hasher = mimcHasher{}

// HasherByName resolves a configured scheme name.
func HasherByName(name string) (Hasher, error) {
	switch name {
	case "", SchemeDoubleSHA256:
		return DoubleSHA256, nil
	case SchemeMiMC:
		return MiMC, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownHashScheme, name)
	}
}

type doubleSHA256 struct{}

func (doubleSHA256) Name() string { return SchemeDoubleSHA256 }

func (doubleSHA256) Sum(commitment, secret string) ([]byte, error) {
	inner := sha256.Sum256([]byte(commitment + secret))
	outer := sha256.Sum256(inner[:])
	return outer[:], nil
}

type mimcHasher struct{}

func (mimcHasher) Name() string { return SchemeMiMC }

func (mimcHasher) Sum(commitment, secret string) ([]byte, error) {
	c, err := field.FromHex(commitment)
	if err != nil {
		return nil, fmt.Errorf("commitment: %w", err)
	}
	s, err := field.FromHex(secret)
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	ce, se := field.Element(c), field.Element(s)

	h := mimc.NewMiMC()
	h.Write(ce.Marshal())
	h.Write(se.Marshal())
	return h.Sum(nil), nil
}
