package claim

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// MaxXP mirrors nullifier.MaxXP inside the circuit.
const MaxXP = 1000

// Bit widths of the range-checked public inputs.
const (
	AddressBits = 160
	SeasonBits  = 63
)

// Circuit proves knowledge of a commitment and player secret such that
// Nullifier = MiMC(Commitment, Secret), and range-checks the remaining
// public inputs.
//
// The order of the public fields is the order of nullifier.ProofPublicInputs:
// nullifier, xp, address, season. gnark lays out the public witness in
// declaration order, so reordering fields here breaks every issued tuple.
type Circuit struct {
	Nullifier frontend.Variable `gnark:",public"`
	XP        frontend.Variable `gnark:",public"`
	Address   frontend.Variable `gnark:",public"`
	Season    frontend.Variable `gnark:",public"`

	// Secret witness, both reduced into the scalar field.
	Commitment frontend.Variable
	Secret     frontend.Variable
}

func (c *Circuit) Define(api frontend.API) error {
	// 1 <= xp <= MaxXP
	api.AssertIsDifferent(c.XP, 0)
	api.AssertIsLessOrEqual(c.XP, MaxXP)

	// 0 < address < 2^160
	api.AssertIsDifferent(c.Address, 0)
	api.ToBinary(c.Address, AddressBits)

	// 1 <= season < 2^63
	api.AssertIsDifferent(c.Season, 0)
	api.ToBinary(c.Season, SeasonBits)
	api.AssertIsDifferent(c.Nullifier, 0)

	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	h.Write(c.Commitment, c.Secret)
	api.AssertIsEqual(h.Sum(), c.Nullifier)

	return nil
}
