package payments_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bistro/pkg/payments"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{1, 100},
		{10.5, 1050},
		{19.99, 1999},
		// binary float rounding must not lose a cent
		{0.29, 29},
		{1.15, 115},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, payments.MinorUnits(tc.price), "price %v", tc.price)
	}
}
