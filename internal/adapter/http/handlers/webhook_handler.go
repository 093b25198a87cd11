package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"doorway_ops/internal/infrastructure/payments"
	"doorway_ops/internal/usecase"
	"doorway_ops/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives Mercado Pago payment notifications.
//
// Verification happens here, before the usecase runs: the x-signature
// header is checked against the configured webhook secret. With no
// secret configured (local setups with the mock gateway) verification
// is skipped.

type WebhookHandler struct {
	usecase usecase.IPaymentWebhookUseCase
	secret  string
}

func NewWebhookHandler(uc usecase.IPaymentWebhookUseCase, secret string) *WebhookHandler {
	if secret == "" {
		log.Printf("[webhook][handler] no webhook secret configured; signature verification disabled")
	}
	return &WebhookHandler{usecase: uc, secret: secret}
}

type webhookBody struct {
	ID   string `json:"id"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// HandlePayment godoc
// @Summary      Payment notification webhook
// @Description  Called by the payment provider when a payment changes state. Signed with the webhook secret.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Router       /webhooks/payment [post]
func (h *WebhookHandler) HandlePayment(c *gin.Context) {
	dataID := c.Query("data.id")

	var body webhookBody
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err == nil {
		if dataID == "" {
			dataID = body.Data.ID
		}
		if dataID == "" {
			dataID = body.ID
		}
	}
	if dataID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Notification has no payment id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.secret != "" {
		err := payments.VerifyWebhookSignature(h.secret, c.GetHeader("x-signature"), c.GetHeader("x-request-id"), dataID)
		if err != nil {
			log.Printf("[webhook][handler] signature rejected data_id=%s", dataID)
			appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	job, err := h.usecase.HandleNotification(c.Request.Context(), dataID)
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if job.ID == "" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "processed", "job_id": job.ID})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Invalid payment id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Referenced job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Job cannot be settled from its current status", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
