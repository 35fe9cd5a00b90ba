package claim

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/minio/sha256-simd"

	"xpclaim/pkg/nullifier"
)

// CircuitIDLength is the number of hex characters of the VK hash used as a
// circuit identifier.
const CircuitIDLength = 16

// VerifyWithKey verifies a claim proof using only the serialized verifying
// key the operator pinned, never one supplied alongside the proof.
func VerifyWithKey(vkBytes, proofBytes []byte, inputs nullifier.ProofPublicInputs) error {
	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(vkBytes)); err != nil {
		return fmt.Errorf("failed to deserialize verifying key: %w", err)
	}
	return verify(vk, proofBytes, inputs)
}

// ComputeVKHash computes the SHA256 hash of raw VK bytes
func ComputeVKHash(vkBytes []byte) string {
	hash := sha256.Sum256(vkBytes)
	return hex.EncodeToString(hash[:])
}

// CircuitID is the short identifier of a verifying key.
func CircuitID(vkBytes []byte) string {
	return ComputeVKHash(vkBytes)[:CircuitIDLength]
}

// ValidateCircuitID checks that circuitID names vkBytes.
func ValidateCircuitID(vkBytes []byte, circuitID string) error {
	if want := CircuitID(vkBytes); circuitID != want {
		return fmt.Errorf("circuit ID mismatch: got %s, expected %s", circuitID, want)
	}
	return nil
}
