package billing

import (
	"math"

	"dash-backend/internal/models"
)

// Totals holds the computed money amounts for a set of line items.
type Totals struct {
	Subtotal    float64
	TaxAmount   float64
	TotalAmount float64
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateTotals computes subtotal, tax and total for the given items
// and a fractional tax rate (0.2 means 20%). Sums are accumulated in
// item order at full precision; rounding happens once, on the outputs.
// Negative quantities or prices do not occur in practice and are summed
// as-is.
func CalculateTotals(items []models.OrderItem, taxRate float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}
	taxAmount := subtotal * taxRate
	return Totals{
		Subtotal:    Round2(subtotal),
		TaxAmount:   Round2(taxAmount),
		TotalAmount: Round2(subtotal + taxAmount),
	}
}
