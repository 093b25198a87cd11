package handlers

import (
	"errors"
	"net/http"

	"doorway_ops/internal/adapter/http/dto/response"
	"doorway_ops/internal/usecase"
	"doorway_ops/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler previews and sends invoices.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// PreviewInvoice godoc
// @Summary      Preview the invoice for a job
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/jobs/{id}/invoice [get]
func (h *InvoiceHandler) PreviewInvoice(c *gin.Context) {
	job, inv, err := h.usecase.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(job, inv))
}

// SendInvoice godoc
// @Summary      Email the invoice and mark the job INVOICED
// @Description  The job only advances to INVOICED after the email went out.
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  response.JobResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /admin/jobs/{id}/invoice [post]
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	job, err := h.usecase.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingJobEmail):
		return pkg.NewDomainErrorSimple("MISSING_EMAIL", "Job has no client email", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMailerUnavailable):
		return pkg.NewDomainErrorSimple("MAILER_UNAVAILABLE", "Invoice email is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
