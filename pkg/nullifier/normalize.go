package nullifier

import (
	"fmt"
	"strconv"
	"strings"
)

// Claim parameter bounds, inclusive.
const (
	MinXP     = 1
	MaxXP     = 1000
	MinSeason = 1

	// MinSecretLength is the shortest secret GenerateNullifier accepts.
	MinSecretLength = 32
)

// NormalizeComponents validates raw claim parameters and returns their
// canonical form with Timestamp and Nonce left empty. Season must already be
// defaulted by the caller.
func NormalizeComponents(address string, xp, season int64) (ClaimComponents, error) {
	if !IsAddress(address) {
		return ClaimComponents{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	if xp < MinXP || xp > MaxXP {
		return ClaimComponents{}, fmt.Errorf("%w: have %d, want %d..%d", ErrInvalidXPAmount, xp, MinXP, MaxXP)
	}
	if season < MinSeason {
		return ClaimComponents{}, fmt.Errorf("%w: have %d, want >= %d", ErrInvalidSeason, season, MinSeason)
	}

	return ClaimComponents{
		Address: strings.ToLower(address[2:]),
		XP:      strconv.FormatInt(xp, 10),
		Season:  strconv.FormatInt(season, 10),
	}, nil
}
