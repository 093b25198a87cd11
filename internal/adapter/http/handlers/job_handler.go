package handlers

import (
	"errors"
	"net/http"

	"doorway_ops/internal/adapter/http/dto/request"
	"doorway_ops/internal/adapter/http/dto/response"
	"doorway_ops/internal/domain/entities"
	"doorway_ops/internal/usecase"
	"doorway_ops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobHandler handles the admin job endpoints.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob godoc
// @Summary      Create a job for an existing client
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      request.CreateJobRequest  true  "Client reference"
// @Success      201  {object}  response.JobResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateFromClient(c.Request.Context(), payload.ClientID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// ListJobs godoc
// @Summary      List jobs, newest first
// @Tags         jobs
// @Produce      json
// @Param        client_id  query     string  false  "Filter by client"
// @Success      200        {array}   response.JobResponse
// @Failure      500        {object}  pkg.HTTPError
// @Router       /admin/jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var (
		jobs []entities.Job
		err  error
	)
	if clientID := c.Query("client_id"); clientID != "" {
		jobs, err = h.usecase.ListByClientID(c.Request.Context(), clientID)
	} else {
		jobs, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// GetJob godoc
// @Summary      Get one job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  response.JobResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// UpdateStatus godoc
// @Summary      Move a job through its workflow
// @Description  Rejects transitions the status workflow does not allow.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id      path      string                       true  "Job id"
// @Param        status  body      request.UpdateStatusRequest  true  "Target status"
// @Success      200     {object}  response.JobResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      422     {object}  pkg.HTTPError
// @Router       /admin/jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.JobStatus(payload.Status))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// UpdateBilling godoc
// @Summary      Set the billing fields on a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Job id"
// @Param        billing  body      request.BillingRequest  true  "Billing fields"
// @Success      200      {object}  response.JobResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /admin/jobs/{id}/billing [patch]
func (h *JobHandler) UpdateBilling(c *gin.Context) {
	var payload request.BillingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateBilling(c.Request.Context(), c.Param("id"),
		payload.Price.Float64(), payload.Discount.Float64(), payload.TaxRate.Float64(), payload.Notes)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// ScheduleJob godoc
// @Summary      Schedule a job
// @Description  Moves the job to SCHEDULED, syncs the calendar and texts the client a confirmation.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id        path      string                   true  "Job id"
// @Param        schedule  body      request.ScheduleRequest  true  "Schedule date"
// @Success      200       {object}  response.JobResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /admin/jobs/{id}/schedule [post]
func (h *JobHandler) ScheduleJob(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	date, err := payload.ResolveDate()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid schedule date", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	job, err := h.usecase.Schedule(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// OnMyWay godoc
// @Summary      Text the client that the crew is en route
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  response.JobResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /admin/jobs/{id}/on-my-way [post]
func (h *JobHandler) OnMyWay(c *gin.Context) {
	job, err := h.usecase.OnMyWay(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// DeleteJob godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id   path  string  true  "Job id"
// @Success      204  "No Content"
// @Failure      400  {object}  pkg.HTTPError
// @Router       /admin/jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrMissingDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Unknown status label", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSMSUnavailable):
		return pkg.NewDomainErrorSimple("SMS_UNAVAILABLE", "SMS is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
