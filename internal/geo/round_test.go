package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Exact binary halves at two decimals, so the assertions are not at the
// mercy of float formatting.
func TestRound2_HalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.13},
		{0.375, 0.38},
		{0.625, 0.63},
		{0.875, 0.88},
		{-0.125, -0.13},
		{-0.875, -0.88},
		{0.12, 0.12},
		{0, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, round2(tc.in), "round2(%v)", tc.in)
	}
}
