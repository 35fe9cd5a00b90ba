package claim

import (
	"bytes"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"xpclaim/pkg/field"
	"xpclaim/pkg/nullifier"
)

// ProverResult contains proving metrics and the proof artifact
type ProverResult struct {
	Proof       []byte
	ProvingTime time.Duration
	Constraints int
}

// ProvingKeys holds Groth16 keys for the claim circuit
type ProvingKeys struct {
	PK  groth16.ProvingKey
	VK  groth16.VerifyingKey
	CCS constraint.ConstraintSystem
}

var (
	cachedKeys *ProvingKeys
	keysMutex  sync.Mutex
)

// Compile compiles the claim circuit over the BN254 scalar field.
func Compile() (constraint.ConstraintSystem, error) {
	var c Circuit
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &c)
	if err != nil {
		return nil, fmt.Errorf("claim circuit compilation failed: %w", err)
	}
	return ccs, nil
}

// Setup performs a development Groth16 setup for the claim circuit (cached).
// Production keys come from a ceremony, not from this function.
func Setup() (*ProvingKeys, error) {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	if cachedKeys != nil {
		return cachedKeys, nil
	}

	ccs, err := Compile()
	if err != nil {
		return nil, err
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("groth16 setup failed: %w", err)
	}

	cachedKeys = &ProvingKeys{
		PK:  pk,
		VK:  vk,
		CCS: ccs,
	}

	return cachedKeys, nil
}

// NewAssignment builds a full witness assignment from a generated claim. r
// must have been produced with the nullifier.MiMC scheme for the proof to
// verify; secret is the player secret r was derived with.
func NewAssignment(r *nullifier.Result, inputs nullifier.ProofPublicInputs, secret string) (*Circuit, error) {
	if r == nil {
		return nil, fmt.Errorf("nil nullifier result")
	}
	assignment, err := publicAssignment(inputs)
	if err != nil {
		return nil, err
	}

	commitment, err := field.FromHex(r.Commitment)
	if err != nil {
		return nil, fmt.Errorf("commitment: %w", err)
	}
	s, err := field.FromHex(secret)
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	assignment.Commitment = field.Reduce(commitment)
	assignment.Secret = field.Reduce(s)

	return assignment, nil
}

// publicAssignment validates inputs with the same rules as the HTTP
// verification path and maps them onto the public fields.
func publicAssignment(inputs nullifier.ProofPublicInputs) (*Circuit, error) {
	res := nullifier.ValidateProofInputs(inputs.Slice())
	if !res.Valid {
		return nil, fmt.Errorf("public inputs rejected: %s: %s", res.Error, res.Reason)
	}

	n, _ := nullifier.ParseInteger(res.Parsed.Nullifier)
	addr, err := field.FromHex(res.Parsed.PlayerAddress)
	if err != nil {
		return nil, fmt.Errorf("player address: %w", err)
	}

	return &Circuit{
		Nullifier: n,
		XP:        big.NewInt(res.Parsed.XP),
		Address:   addr,
		Season:    big.NewInt(res.Parsed.Season),
	}, nil
}

// PublicWitness returns the public witness for inputs, in circuit order.
func PublicWitness(inputs nullifier.ProofPublicInputs) (witness.Witness, error) {
	assignment, err := publicAssignment(inputs)
	if err != nil {
		return nil, err
	}
	pubWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return nil, fmt.Errorf("public witness creation failed: %w", err)
	}
	return pubWitness, nil
}

// Prove generates a claim proof
func Prove(keys *ProvingKeys, assignment *Circuit) (*ProverResult, error) {
	startTime := time.Now()

	if keys == nil {
		var err error
		keys, err = Setup()
		if err != nil {
			return nil, err
		}
	}

	fullWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness creation failed: %w", err)
	}

	proof, err := groth16.Prove(keys.CCS, keys.PK, fullWitness)
	if err != nil {
		return nil, fmt.Errorf("proof generation failed: %w", err)
	}

	var proofBuf bytes.Buffer
	if _, err := proof.WriteTo(&proofBuf); err != nil {
		return nil, fmt.Errorf("proof serialization failed: %w", err)
	}

	return &ProverResult{
		Proof:       proofBuf.Bytes(),
		ProvingTime: time.Since(startTime),
		Constraints: keys.CCS.GetNbConstraints(),
	}, nil
}

// Verify verifies a claim proof against its public inputs
func Verify(keys *ProvingKeys, proofBytes []byte, inputs nullifier.ProofPublicInputs) error {
	if keys == nil {
		var err error
		keys, err = Setup()
		if err != nil {
			return err
		}
	}
	return verify(keys.VK, proofBytes, inputs)
}

func verify(vk groth16.VerifyingKey, proofBytes []byte, inputs nullifier.ProofPublicInputs) error {
	pubWitness, err := PublicWitness(inputs)
	if err != nil {
		return err
	}

	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return fmt.Errorf("proof deserialization failed: %w", err)
	}

	if err := groth16.Verify(proof, vk, pubWitness); err != nil {
		return fmt.Errorf("proof verification failed: %w", err)
	}

	return nil
}

// GetVerifyingKeyBytes returns the serialized verifying key
func GetVerifyingKeyBytes(keys *ProvingKeys) ([]byte, error) {
	if keys == nil {
		var err error
		keys, err = Setup()
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := keys.VK.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
