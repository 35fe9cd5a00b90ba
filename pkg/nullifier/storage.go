package nullifier

import (
	"encoding/hex"

	"github.com/minio/sha256-simd"
)

// StorageKeyLength is the number of hex characters in a storage key.
const StorageKeyLength = 16

// CreateStorageKey maps a nullifier to a short lookup key: the first 16 hex
// characters of SHA-256(nullifier). Collisions are left to the store.
func CreateStorageKey(nullifier string) string {
	sum := sha256.Sum256([]byte(nullifier))
	return hex.EncodeToString(sum[:])[:StorageKeyLength]
}
