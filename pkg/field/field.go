// Package field exposes the BN254 scalar field that every nullifier lives in.
package field

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ModulusDecimal is the BN254 scalar field size p.
const ModulusDecimal = "21888242871839275222246405745257275088548364400416034343698204186575808495617"

var modulus = ecc.BN254.ScalarField()

// Modulus returns a copy of p.
func Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

// Reduce returns x mod p in [0, p). Negative inputs wrap around.
func Reduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, modulus)
}

// InRange reports whether 0 < x < p.
func InRange(x *big.Int) bool {
	return x != nil && x.Sign() > 0 && x.Cmp(modulus) < 0
}

// FromHex parses a hex digest (with or without 0x) as a non-negative integer.
func FromHex(s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, fmt.Errorf("empty hex value")
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid hex value %q", s)
	}
	return v, nil
}

// Element converts x to a field element, reducing it first.
func Element(x *big.Int) fr.Element {
	var e fr.Element
	e.SetBigInt(x)
	return e
}
