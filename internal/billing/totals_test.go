package billing

import (
	"testing"

	"dash-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotals(t *testing.T) {
	items := []models.OrderItem{
		{Quantity: 2, UnitPrice: 100},
		{Quantity: 1, UnitPrice: 50},
	}

	totals := CalculateTotals(items, 0.19)

	assert.Equal(t, 250.0, totals.Subtotal)
	assert.Equal(t, 47.5, totals.TaxAmount)
	assert.Equal(t, 297.5, totals.TotalAmount)
}

func TestCalculateTotalsRoundsOutputsOnly(t *testing.T) {
	// 2 x 10.005 = 20.01 exactly at the subtotal; the tax amount
	// rounds from 4.002, and the total rounds from the unrounded sum,
	// not from the two rounded parts.
	items := []models.OrderItem{
		{Quantity: 2, UnitPrice: 10.005},
	}

	totals := CalculateTotals(items, 0.2)

	assert.Equal(t, 20.01, totals.Subtotal)
	assert.Equal(t, 4.0, totals.TaxAmount)
	assert.Equal(t, 24.01, totals.TotalAmount)
}

func TestCalculateTotalsZeroRate(t *testing.T) {
	items := []models.OrderItem{
		{Quantity: 3, UnitPrice: 9.99},
	}

	totals := CalculateTotals(items, 0)

	assert.Equal(t, 29.97, totals.Subtotal)
	assert.Equal(t, 0.0, totals.TaxAmount)
	assert.Equal(t, 29.97, totals.TotalAmount)
}

func TestCalculateTotalsEmpty(t *testing.T) {
	totals := CalculateTotals(nil, 0.19)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.TaxAmount)
	assert.Equal(t, 0.0, totals.TotalAmount)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.13, Round2(1.125))
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, -1.13, Round2(-1.125))
	assert.Equal(t, 100.0, Round2(99.999))
}
