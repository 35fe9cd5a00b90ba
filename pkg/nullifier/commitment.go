package nullifier

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/minio/sha256-simd"
)

// NonceSize is the number of random bytes mixed into every commitment.
const NonceSize = 16

// componentSeparator never occurs in hex or decimal fields.
const componentSeparator = "|"

// ComputeCommitment hashes the components in the fixed order
// address|xp|season|timestamp|nonce and returns the hex SHA-256 digest.
func ComputeCommitment(c ClaimComponents) string {
	joined := strings.Join([]string{c.Address, c.XP, c.Season, c.Timestamp, c.Nonce}, componentSeparator)
	sum := sha256.Sum256([]byte(joined))
	return hex.EncodeToString(sum[:])
}

// withFreshness stamps c with the millisecond timestamp of now and a nonce
// read from r.
func withFreshness(c ClaimComponents, now time.Time, r io.Reader) (ClaimComponents, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(r, nonce); err != nil {
		return ClaimComponents{}, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	c.Timestamp = strconv.FormatInt(now.UnixMilli(), 10)
	c.Nonce = hex.EncodeToString(nonce)
	return c, nil
}
