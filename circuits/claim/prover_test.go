package claim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"xpclaim/pkg/nullifier"
)

func TestFullProofFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping groth16 setup in short mode")
	}

	keys, err := Setup()
	require.NoError(t, err)

	assignment, inputs := mimcClaim(t, 50, 1)

	result, err := Prove(keys, assignment)
	require.NoError(t, err)
	require.NotEmpty(t, result.Proof)
	t.Logf("proof generated in %v (%d constraints, %d bytes)", result.ProvingTime, result.Constraints, len(result.Proof))

	require.NoError(t, Verify(keys, result.Proof, inputs))

	vkBytes, err := GetVerifyingKeyBytes(keys)
	require.NoError(t, err)
	require.NoError(t, VerifyWithKey(vkBytes, result.Proof, inputs))
	require.NoError(t, ValidateCircuitID(vkBytes, CircuitID(vkBytes)))
	require.Error(t, ValidateCircuitID(vkBytes, "0000000000000000"))

	// same proof, different season
	tampered := inputs
	tampered[3] = "2"
	require.Error(t, Verify(keys, result.Proof, tampered))

	// same proof, another player's address
	other, err := nullifier.AddressToDecimal("0x0000000000000000000000000000000000000001")
	require.NoError(t, err)
	tampered = inputs
	tampered[2] = other
	require.Error(t, Verify(keys, result.Proof, tampered))
}

func TestVerifyMalformedProof(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping groth16 setup in short mode")
	}

	_, inputs := mimcClaim(t, 50, 1)
	require.Error(t, Verify(nil, []byte{}, inputs))
	require.Error(t, VerifyWithKey([]byte{1, 2, 3}, []byte{}, inputs))
}
