package services

import (
	"testing"

	"StorefrontAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	lines := []model.CartLine{
		{ProductID: 1, Price: 100, Quantity: 2},
		{ProductID: 2, Price: 50, Quantity: 1},
	}

	totals := ComputeTotals(lines)

	assert.Equal(t, int64(250), totals.SubTotal)
	assert.Equal(t, 5.0, totals.Tax)
	assert.Equal(t, 255.0, totals.GrandTotal)
	assert.Equal(t, 3, totals.Quantity)
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	a := []model.CartLine{
		{ProductID: 1, Price: 19, Quantity: 3},
		{ProductID: 2, Price: 7, Quantity: 1},
		{ProductID: 3, Price: 120, Quantity: 2},
	}
	b := []model.CartLine{a[2], a[0], a[1]}

	require.Equal(t, ComputeTotals(a), ComputeTotals(b))
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.Zero(t, totals.SubTotal)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.GrandTotal)
	assert.Zero(t, totals.Quantity)
}

func TestComputeTotalsFractionalTax(t *testing.T) {
	// 2% of 155 is 3.1; the grand total keeps the fraction.
	totals := ComputeTotals([]model.CartLine{{Price: 155, Quantity: 1}})

	assert.Equal(t, int64(155), totals.SubTotal)
	assert.InDelta(t, 3.1, totals.Tax, 1e-9)
	assert.InDelta(t, 158.1, totals.GrandTotal, 1e-9)
}
