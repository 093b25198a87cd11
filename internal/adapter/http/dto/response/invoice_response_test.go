package response

import (
	"testing"

	"doorway_ops/internal/domain/entities"
)

func TestFromInvoiceRoundsAtDisplayEdge(t *testing.T) {
	job := entities.Job{ID: "job-1", Service: "Window Cleaning", InvoiceNotes: "second floor"}
	inv := entities.ComputeInvoice(100, 10, 13)

	resp := FromInvoice(job, inv)
	if resp.Subtotal != 90 {
		t.Fatalf("expected subtotal 90, got %v", resp.Subtotal)
	}
	if resp.TaxAmount != 11.70 {
		t.Fatalf("expected tax 11.70, got %v", resp.TaxAmount)
	}
	if resp.Total != 101.70 {
		t.Fatalf("expected total 101.70, got %v", resp.Total)
	}
	if resp.JobID != "job-1" || resp.Notes != "second floor" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
