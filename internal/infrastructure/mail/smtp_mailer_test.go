package mail

import (
	"strings"
	"testing"

	"doorway_ops/internal/domain/entities"
)

func TestRenderInvoice(t *testing.T) {
	job := entities.Job{
		ID:           "job-1",
		Name:         "Dana",
		Email:        "dana@example.com",
		Address:      "12 Elm St",
		Service:      "Gutter Cleaning",
		InvoiceNotes: "Includes downspout flush",
	}
	inv := entities.ComputeInvoice(100, 10, 13)

	body, err := renderInvoice(invoiceTemplate, job, inv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Hi Dana,",
		"Gutter Cleaning",
		"12 Elm St",
		"$100.00",
		"$10.00",
		"$90.00",
		"$11.70",
		"$101.70",
		"Includes downspout flush",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("rendered invoice missing %q:\n%s", want, body)
		}
	}
}

func TestRenderInvoiceEscapesNotes(t *testing.T) {
	job := entities.Job{Name: "Dana", Service: "Detail", InvoiceNotes: `<script>alert("x")</script>`}
	body, err := renderInvoice(invoiceTemplate, job, entities.ComputeInvoice(50, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Fatalf("notes were not escaped:\n%s", body)
	}
}

func TestNewSMTPMailerRequiresHost(t *testing.T) {
	if _, err := NewSMTPMailer("", 587, "", "", "billing@example.com"); err != ErrMailerNotConfigured {
		t.Fatalf("expected ErrMailerNotConfigured, got %v", err)
	}
	if _, err := NewSMTPMailer("smtp.example.com", 587, "", "", ""); err != ErrMailerNotConfigured {
		t.Fatalf("expected ErrMailerNotConfigured, got %v", err)
	}
}
