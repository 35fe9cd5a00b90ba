package nullifier

import (
	"crypto/hmac"
	"encoding/hex"
	"strings"

	"github.com/minio/sha256-simd"
)

// GeneratePlayerSecret derives the per-player secret as
// HMAC-SHA256(masterSecret, lowercase(address)). The 0x prefix is kept, only
// the case is folded.
func GeneratePlayerSecret(address, masterSecret string) string {
	mac := hmac.New(sha256.New, []byte(masterSecret))
	mac.Write([]byte(strings.ToLower(address)))
	return hex.EncodeToString(mac.Sum(nil))
}
