package routes

import (
	"doorway_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs    = "/jobs"
	PathClients = "/clients"
)

func addAdminRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, jobHandler *handlers.JobHandler, clientHandler *handlers.ClientHandler, invoiceHandler *handlers.InvoiceHandler, eventsHandler *handlers.EventsHandler) {
	admin := rg.Group("/admin", authHandler.RequireAdmin())

	jobs := admin.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)
		jobs.PATCH("/:id/status", jobHandler.UpdateStatus)
		jobs.PATCH("/:id/billing", jobHandler.UpdateBilling)
		jobs.POST("/:id/schedule", jobHandler.ScheduleJob)
		jobs.POST("/:id/on-my-way", jobHandler.OnMyWay)
		jobs.GET("/:id/invoice", invoiceHandler.PreviewInvoice)
		jobs.POST("/:id/invoice", invoiceHandler.SendInvoice)
	}

	clients := admin.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	admin.GET("/events", eventsHandler.Stream)
}
