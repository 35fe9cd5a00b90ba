package nullifier

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"xpclaim/pkg/field"
)

const validNullifier = "1753519619509918930572228623505140647327051542922246349332595815774963955893"

func TestVerifyNullifierFormat(t *testing.T) {
	p := field.Modulus()
	pMinusOne := new(big.Int).Sub(p, big.NewInt(1))

	testCases := []struct {
		name string
		in   any
		want bool
	}{
		{"zero", "0", false},
		{"one", "1", true},
		{"p", p.String(), false},
		{"p minus one", pMinusOne.String(), true},
		{"p plus one", new(big.Int).Add(p, big.NewInt(1)).String(), false},
		{"negative", "-1", false},
		{"not a number", "not-a-number", false},
		{"empty", "", false},
		{"fraction", "1.5", false},
		{"padded", "  42 ", true},
		{"hex literal", "0x2a", true},
		{"signed hex", "0x-2a", false},
		{"underscore", "1_000", false},
		{"big.Int", pMinusOne, true},
		{"big.Int p", p, false},
		{"nil big.Int", (*big.Int)(nil), false},
		{"int", 7, true},
		{"zero int", 0, false},
		{"float", 12.0, true},
		{"fractional float", 12.5, false},
		{"json number", json.Number("99"), true},
		{"nil", nil, false},
		{"bool", true, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, VerifyNullifierFormat(tc.in))
		})
	}
}

func TestValidateProofInputs_Valid(t *testing.T) {
	res := ValidateProofInputs([]string{validNullifier, "50", testAddressDec, "1"})
	require.Equal(t, ValidationResult{
		Valid: true,
		Parsed: &ParsedInputs{
			Nullifier:     validNullifier,
			XP:            50,
			PlayerAddress: "0xabcdef0123456789abcdef0123456789abcdef01",
			Season:        1,
		},
	}, res)
}

func TestValidateProofInputs_Rejections(t *testing.T) {
	testCases := []struct {
		name   string
		inputs []string
		want   Kind
	}{
		{"nil", nil, KindInvalidInputsArray},
		{"three elements", []string{"123", "50", "1"}, KindInvalidInputsArray},
		{"five elements", []string{validNullifier, "50", testAddressDec, "1", "1"}, KindInvalidInputsArray},
		{"zero nullifier", []string{"0", "50", testAddressDec, "1"}, KindInvalidNullifierFormat},
		{"nullifier equals p", []string{field.ModulusDecimal, "50", testAddressDec, "1"}, KindInvalidNullifierFormat},
		{"garbage nullifier", []string{"abc", "50", testAddressDec, "1"}, KindInvalidNullifierFormat},
		{"zero xp", []string{validNullifier, "0", testAddressDec, "1"}, KindInvalidXPAmount},
		{"xp above cap", []string{validNullifier, "1001", testAddressDec, "1"}, KindInvalidXPAmount},
		{"garbage xp", []string{validNullifier, "fifty", testAddressDec, "1"}, KindInvalidXPAmount},
		{"huge xp", []string{validNullifier, "99999999999999999999999", testAddressDec, "1"}, KindInvalidXPAmount},
		{"zero address", []string{validNullifier, "50", "0", "1"}, KindInvalidPlayerAddress},
		{"negative address", []string{validNullifier, "50", "-5", "1"}, KindInvalidPlayerAddress},
		{"garbage address", []string{validNullifier, "50", "0xzz", "1"}, KindInvalidPlayerAddress},
		{"address over 160 bits", []string{validNullifier, "50", new(big.Int).Lsh(big.NewInt(1), 160).String(), "1"}, KindInvalidPlayerAddress},
		{"zero season", []string{validNullifier, "50", testAddressDec, "0"}, KindInvalidSeason},
		{"garbage season", []string{validNullifier, "50", testAddressDec, "s1"}, KindInvalidSeason},
		// first failure wins
		{"bad xp and season", []string{validNullifier, "0", testAddressDec, "0"}, KindInvalidXPAmount},
		{"bad everything", []string{"0", "0", "0", "0"}, KindInvalidNullifierFormat},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateProofInputs(tc.inputs)
			require.False(t, res.Valid)
			require.Equal(t, tc.want, res.Error)
			require.NotEmpty(t, res.Reason)
			require.Nil(t, res.Parsed)
		})
	}
}

func TestValidateProofInputs_AddressRoundTrip(t *testing.T) {
	addresses := []string{
		"0x0000000000000000000000000000000000000001",
		"0x00000000000000000000000000000000000000ff",
		"0x0a0b0c0d0e0f101112131415161718191a1b1c1d",
		"0xffffffffffffffffffffffffffffffffffffffff",
		"0xABCDEF0123456789ABCDEF0123456789ABCDEF01",
	}
	for _, addr := range addresses {
		dec, err := AddressToDecimal(addr)
		require.NoError(t, err)

		res := ValidateProofInputs([]string{validNullifier, "1", dec, "7"})
		require.True(t, res.Valid, "address %s: %s", addr, res.Reason)
		require.Len(t, res.Parsed.PlayerAddress, 42)
		require.Equal(t, "0x"+lower(addr[2:]), res.Parsed.PlayerAddress)
	}
}

func TestValidateProofInputsAny_JSON(t *testing.T) {
	var inputs []any
	raw := `["` + validNullifier + `", 50, "` + testAddressDec + `", 2]`
	require.NoError(t, json.Unmarshal([]byte(raw), &inputs))

	res := ValidateProofInputsAny(inputs)
	require.True(t, res.Valid, res.Reason)
	require.Equal(t, int64(50), res.Parsed.XP)
	require.Equal(t, int64(2), res.Parsed.Season)

	res = ValidateProofInputsAny([]any{validNullifier, 50.5, testAddressDec, 2})
	require.Equal(t, KindInvalidXPAmount, res.Error)

	res = ValidateProofInputsAny([]any{big.NewInt(5), 1, testAddressDec, 1})
	require.True(t, res.Valid)
	require.Equal(t, "5", res.Parsed.Nullifier)
}

func TestValidationResult_JSON(t *testing.T) {
	out, err := json.Marshal(ValidateProofInputs([]string{"123", "50", "1"}))
	require.NoError(t, err)
	require.JSONEq(t, `{"valid":false,"error":"InvalidInputsArray","reason":"expected 4 public inputs, got 3"}`, string(out))
}

func TestServiceValidateProofInputs(t *testing.T) {
	res := New().ValidateProofInputs([]string{validNullifier, "50", "0", "1"})
	require.Equal(t, KindInvalidPlayerAddress, res.Error)
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
