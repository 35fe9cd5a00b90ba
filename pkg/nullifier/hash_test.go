package nullifier

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"xpclaim/pkg/field"
)

const testCommitment = "1b38eaa6ea1a719ed6e466ac104f7b38a89eba91384d83ab5cf159e39a927029"

func TestHasherByName(t *testing.T) {
	h, err := HasherByName("")
	require.NoError(t, err)
	require.Equal(t, SchemeDoubleSHA256, h.Name())

	h, err = HasherByName(SchemeMiMC)
	require.NoError(t, err)
	require.Equal(t, SchemeMiMC, h.Name())

	_, err = HasherByName("poseidon")
	require.ErrorIs(t, err, ErrUnknownHashScheme)
}

func TestMiMCHasher(t *testing.T) {
	digest, err := MiMC.Sum(testCommitment, testPlayerSecret)
	require.NoError(t, err)
	require.Len(t, digest, 32)

	// MiMC output is a canonical field element, reduction is a no-op.
	d := new(big.Int).SetBytes(digest)
	require.Zero(t, d.Cmp(field.Reduce(d)))

	again, err := MiMC.Sum(testCommitment, testPlayerSecret)
	require.NoError(t, err)
	require.Equal(t, digest, again)

	swapped, err := MiMC.Sum(testPlayerSecret, testCommitment)
	require.NoError(t, err)
	require.NotEqual(t, digest, swapped)

	_, err = MiMC.Sum("not hex", testPlayerSecret)
	require.Error(t, err)
}

func TestDeriveNullifier_Schemes(t *testing.T) {
	a, ah, err := DeriveNullifier(DoubleSHA256, testCommitment, testPlayerSecret)
	require.NoError(t, err)
	b, bh, err := DeriveNullifier(MiMC, testCommitment, testPlayerSecret)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NotEqual(t, ah, bh)
	require.True(t, VerifyNullifierFormat(a))
	require.True(t, VerifyNullifierFormat(b))
}

func TestGenerateNullifier_MiMC(t *testing.T) {
	r, err := New(WithHasher(MiMC)).GenerateNullifier(testAddress, 10, 2, testPlayerSecret)
	require.NoError(t, err)
	require.True(t, VerifyNullifierFormat(r.Nullifier))

	want, _, err := DeriveNullifier(MiMC, r.Commitment, testPlayerSecret)
	require.NoError(t, err)
	require.Equal(t, want, r.Nullifier)
}

type zeroHasher struct{}

func (zeroHasher) Name() string { return "zero" }

func (zeroHasher) Sum(string, string) ([]byte, error) {
	return field.Modulus().Bytes(), nil
}

func TestDeriveNullifier_RejectsZero(t *testing.T) {
	_, _, err := DeriveNullifier(zeroHasher{}, testCommitment, testPlayerSecret)
	require.ErrorIs(t, err, ErrInvalidNullifierFormat)
}
