package entities

import (
	"math"
	"testing"
)

func TestComputeInvoice(t *testing.T) {
	t.Run("standard case", func(t *testing.T) {
		inv := ComputeInvoice(100, 10, 13)
		if inv.Subtotal != 90 {
			t.Fatalf("expected subtotal 90, got %v", inv.Subtotal)
		}
		if RoundCents(inv.TaxAmount) != 11.70 {
			t.Fatalf("expected tax 11.70, got %v", inv.TaxAmount)
		}
		if RoundCents(inv.Total) != 101.70 {
			t.Fatalf("expected total 101.70, got %v", inv.Total)
		}
	})

	t.Run("zero price", func(t *testing.T) {
		inv := ComputeInvoice(0, 0, 13)
		if inv.Total != 0 {
			t.Fatalf("expected total 0, got %v", inv.Total)
		}
	})

	t.Run("negative inputs default to zero", func(t *testing.T) {
		inv := ComputeInvoice(50, -5, -13)
		if inv.Discount != 0 || inv.TaxRate != 0 {
			t.Fatalf("expected negatives clamped, got %+v", inv)
		}
		if inv.Total != 50 {
			t.Fatalf("expected total 50, got %v", inv.Total)
		}
	})

	t.Run("non-finite inputs default to zero", func(t *testing.T) {
		inv := ComputeInvoice(math.NaN(), math.Inf(1), 10)
		if inv.Price != 0 || inv.Discount != 0 {
			t.Fatalf("expected non-finite inputs clamped, got %+v", inv)
		}
	})
}

func TestRoundCents(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{11.699999999999999, 11.70},
		{101.706, 101.71},
		{2.344, 2.34},
		{-2.346, -2.35},
		{0, 0},
	}
	for _, tc := range cases {
		if got := RoundCents(tc.in); got != tc.want {
			t.Fatalf("RoundCents(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
