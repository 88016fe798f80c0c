package pricing

import (
	"testing"

	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testThreshold = int64(500)
	testFlatFee   = int64(50)
)

func TestComputeTotals_EmptyCart(t *testing.T) {
	totals, err := ComputeTotals(nil, testThreshold, testFlatFee)

	require.NoError(t, err)
	assert.Equal(t, Totals{}, totals)
}

func TestComputeTotals_Table(t *testing.T) {
	tests := []struct {
		name      string
		lines     []entity.CartLine
		wantSub   int64
		wantFee   int64
		wantTotal int64
	}{
		{
			name:      "above threshold waives fee",
			lines:     []entity.CartLine{{Name: "Fern", UnitPrice: 300, Quantity: 2}},
			wantSub:   600,
			wantFee:   0,
			wantTotal: 600,
		},
		{
			name:      "exactly at threshold waives fee",
			lines:     []entity.CartLine{{Name: "Monstera", UnitPrice: 500, Quantity: 1}},
			wantSub:   500,
			wantFee:   0,
			wantTotal: 500,
		},
		{
			name:      "below threshold charges flat fee",
			lines:     []entity.CartLine{{Name: "Succulent", UnitPrice: 100, Quantity: 2}},
			wantSub:   200,
			wantFee:   50,
			wantTotal: 250,
		},
		{
			name: "multiple lines accumulate",
			lines: []entity.CartLine{
				{Name: "Fern", UnitPrice: 300, Quantity: 1},
				{Name: "Pot", UnitPrice: 120, Quantity: 2},
			},
			wantSub:   540,
			wantFee:   0,
			wantTotal: 540,
		},
		{
			name:      "one unit below threshold",
			lines:     []entity.CartLine{{Name: "Cactus", UnitPrice: 499, Quantity: 1}},
			wantSub:   499,
			wantFee:   50,
			wantTotal: 549,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := ComputeTotals(tt.lines, testThreshold, testFlatFee)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, totals.Subtotal)
			assert.Equal(t, tt.wantFee, totals.DeliveryFee)
			assert.Equal(t, tt.wantTotal, totals.Total)
			assert.Equal(t, totals.Subtotal+totals.DeliveryFee, totals.Total)
		})
	}
}

func TestComputeTotals_ZeroThresholdAlwaysFree(t *testing.T) {
	totals, err := ComputeTotals([]entity.CartLine{{Name: "Fern", UnitPrice: 10, Quantity: 1}}, 0, testFlatFee)

	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.DeliveryFee)
}

func TestComputeTotals_InvalidQuantity(t *testing.T) {
	for _, qty := range []int{0, -1} {
		_, err := ComputeTotals([]entity.CartLine{{Name: "Fern", UnitPrice: 300, Quantity: qty}}, testThreshold, testFlatFee)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCartLine)
	}
}

func TestComputeTotals_NegativeUnitPrice(t *testing.T) {
	_, err := ComputeTotals([]entity.CartLine{{Name: "Fern", UnitPrice: -5, Quantity: 1}}, testThreshold, testFlatFee)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCartLine)
}

func TestComputeTotals_Idempotent(t *testing.T) {
	lines := []entity.CartLine{{Name: "Fern", UnitPrice: 300, Quantity: 2}}

	first, err := ComputeTotals(lines, testThreshold, testFlatFee)
	require.NoError(t, err)
	second, err := ComputeTotals(lines, testThreshold, testFlatFee)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
