package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLamportsToSOL(t *testing.T) {
	assert.Equal(t, "0.024981836", LamportsToSOL(24981836))
	assert.Equal(t, "0.000000000", LamportsToSOL(0))
	assert.Equal(t, "2.000000000", LamportsToSOL(2*LamportsPerSOL))
	assert.Equal(t, "0.000005000", LamportsToSOL(5000))
}

func TestSOLToLamports(t *testing.T) {
	cases := map[string]uint64{
		"0.1":          100_000_000,
		"2":            2 * LamportsPerSOL,
		"0.000005":     5000,
		".5":           500_000_000,
		" 1.000000001": 1_000_000_001,
	}
	for in, want := range cases {
		got, err := SOLToLamports(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestSOLToLamportsRejects(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "-1", "+1", "0.0000000001", "1e9"} {
		_, err := SOLToLamports(in)
		assert.Error(t, err, in)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 999_995_000, 1_000_000_000, 123_456_789_012} {
		got, err := SOLToLamports(LamportsToSOL(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
