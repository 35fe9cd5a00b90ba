package nullifier

import (
	"errors"
	"fmt"
)

// GenerateProofInputs assembles the public inputs for a generated claim.
// address is the raw 0x address the claim was generated for; only its
// integer value is used. No range checks run here, r is trusted.
func GenerateProofInputs(r *Result, address string) (ProofPublicInputs, error) {
	if r == nil {
		return ProofPublicInputs{}, errors.New("nil nullifier result")
	}
	addr, err := AddressToDecimal(address)
	if err != nil {
		return ProofPublicInputs{}, fmt.Errorf("proof inputs: %w", err)
	}
	return ProofPublicInputs{r.Nullifier, r.Components.XP, addr, r.Components.Season}, nil
}
