package payments

import (
	"context"
	"errors"
	"log"
	"strconv"

	"doorway_ops/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway resolves provider payments for webhook handling.
// Payments are created on Mercado Pago's side from the checkout link on
// the invoice; this service only ever reads them back.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (interfaces.PaymentInfo, error) {
	if g != nil && g.mockMode {
		// Mock mode treats the notification id as the job reference so a
		// local curl can settle any job without a real provider account.
		log.Printf("[payment][gateway] mock lookup provider_payment_id=%s", providerPaymentID)
		return interfaces.PaymentInfo{
			ID:           providerPaymentID,
			Status:       interfaces.PaymentStatusApproved,
			JobReference: providerPaymentID,
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.PaymentInfo{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		log.Printf("[payment][gateway] non-numeric payment id provider_payment_id=%s", providerPaymentID)
		return interfaces.PaymentInfo{}, err
	}

	log.Printf("[payment][gateway] lookup start provider_payment_id=%d", id)
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%d err=%v", id, err)
		return interfaces.PaymentInfo{}, err
	}
	log.Printf("[payment][gateway] lookup success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return interfaces.PaymentInfo{
		ID:           strconv.Itoa(resp.ID),
		Status:       resp.Status,
		JobReference: resp.ExternalReference,
		Amount:       resp.TransactionAmount,
	}, nil
}
