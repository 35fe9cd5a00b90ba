package nullifier

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"xpclaim/pkg/field"
)

// VerifyNullifierFormat reports whether v parses as an integer strictly
// between 0 and the field modulus. Strings, big integers, Go integer types,
// integral floats and json.Number are accepted; anything else is false.
func VerifyNullifierFormat(v any) bool {
	n, ok := ParseInteger(v)
	return ok && field.InRange(n)
}

// ValidateProofInputs checks an untrusted public-input tuple before it is
// handed to proof verification. Checks run in circuit order and the first
// failure is reported.
func ValidateProofInputs(inputs []string) ValidationResult {
	untyped := make([]any, len(inputs))
	for i, in := range inputs {
		untyped[i] = in
	}
	return ValidateProofInputsAny(untyped)
}

// ValidateProofInputsAny is ValidateProofInputs over a decoded JSON array,
// where elements may arrive as strings or numbers.
func ValidateProofInputsAny(inputs []any) ValidationResult {
	if len(inputs) != len(ProofPublicInputs{}) {
		return reject(KindInvalidInputsArray, fmt.Sprintf("expected %d public inputs, got %d", len(ProofPublicInputs{}), len(inputs)))
	}

	if !VerifyNullifierFormat(inputs[0]) {
		return reject(KindInvalidNullifierFormat, "nullifier is not an integer in (0, p)")
	}
	nullifier, ok := inputs[0].(string)
	if !ok {
		n, _ := ParseInteger(inputs[0])
		nullifier = n.String()
	}

	xp, ok := ParseInteger(inputs[1])
	if !ok || !xp.IsInt64() || xp.Int64() < MinXP || xp.Int64() > MaxXP {
		return reject(KindInvalidXPAmount, fmt.Sprintf("xp must be an integer in %d..%d", MinXP, MaxXP))
	}

	addr, ok := ParseInteger(inputs[2])
	if !ok {
		return reject(KindInvalidPlayerAddress, "player address is not an integer")
	}
	playerAddress, reason := decimalToAddress(addr)
	if reason != "" {
		return reject(KindInvalidPlayerAddress, reason)
	}

	season, ok := ParseInteger(inputs[3])
	if !ok || !season.IsInt64() || season.Int64() < MinSeason {
		return reject(KindInvalidSeason, fmt.Sprintf("season must be an integer >= %d", MinSeason))
	}

	return ValidationResult{
		Valid: true,
		Parsed: &ParsedInputs{
			Nullifier:     nullifier,
			XP:            xp.Int64(),
			PlayerAddress: playerAddress,
			Season:        season.Int64(),
		},
	}
}

func reject(kind Kind, reason string) ValidationResult {
	return ValidationResult{Error: kind, Reason: reason}
}

// ParseInteger coerces v to an integer the way the validators do.
func ParseInteger(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case string:
		return parseIntegerString(x)
	case json.Number:
		return parseIntegerString(x.String())
	case *big.Int:
		if x == nil {
			return nil, false
		}
		return new(big.Int).Set(x), true
	case big.Int:
		return new(big.Int).Set(&x), true
	case int:
		return big.NewInt(int64(x)), true
	case int32:
		return big.NewInt(int64(x)), true
	case int64:
		return big.NewInt(x), true
	case uint:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint64:
		return new(big.Int).SetUint64(x), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
			return nil, false
		}
		n, _ := big.NewFloat(x).Int(nil)
		return n, true
	case fmt.Stringer:
		return parseIntegerString(x.String())
	default:
		return nil, false
	}
}

// parseIntegerString accepts the integer literal forms a JavaScript BigInt
// constructor accepts: surrounding whitespace, an optional sign on decimal
// literals, and 0x/0o/0b prefixes without sign. The empty string is zero.
func parseIntegerString(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), true
	}

	base := 10
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			s = s[2:]
			if s[0] == '+' || s[0] == '-' {
				return nil, false
			}
		}
	}

	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, false
	}
	return n, true
}
