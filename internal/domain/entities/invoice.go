package entities

import "math"

// Invoice holds the computed amounts for a job's invoice.
//
// Amounts are kept at full float64 precision; rounding to cents happens
// only where a value is displayed or stored, via RoundCents, so the
// three arithmetic steps never compound rounding error.
type Invoice struct {
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount"`
	TaxRate   float64 `json:"tax_rate"`
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

// ComputeInvoice derives the amount due from a job's billing fields.
//
//	subtotal = price - discount
//	tax      = subtotal * taxRate/100
//	total    = subtotal + tax
//
// Negative or non-finite inputs default to 0.
func ComputeInvoice(price, discount, taxRate float64) Invoice {
	price = sanitizeAmount(price)
	discount = sanitizeAmount(discount)
	taxRate = sanitizeAmount(taxRate)

	subtotal := price - discount
	tax := subtotal * (taxRate / 100)

	return Invoice{
		Price:     price,
		Discount:  discount,
		TaxRate:   taxRate,
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal + tax,
	}
}

// RoundCents rounds to the nearest cent, half away from zero.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func sanitizeAmount(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
