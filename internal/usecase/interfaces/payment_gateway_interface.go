package interfaces

import "context"

// PaymentStatusApproved is the provider status meaning the money
// actually moved; anything else is ignored by the webhook flow.
const PaymentStatusApproved = "approved"

// PaymentInfo is the provider-neutral view of one payment.
//
// JobReference carries the provider's external_reference, which this
// system always sets to the job id.
type PaymentInfo struct {
	ID           string
	Status       string
	JobReference string
	Amount       float64
}

// IPaymentGateway abstracts the external payment provider (Mercado
// Pago). The webhook flow uses it to fetch the payment a notification
// points at; notification bodies are not trusted for amounts.
type IPaymentGateway interface {
	GetPayment(ctx context.Context, providerPaymentID string) (PaymentInfo, error)
}
