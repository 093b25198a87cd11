package routes

import (
	"net/http"

	"doorway_ops/internal/adapter/http/handlers"
	"doorway_ops/internal/infrastructure/config"
	"doorway_ops/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	PathQuotes   = "/quotes"
	PathWebhooks = "/webhooks"
)

func addPublicRoutes(rg *gin.RouterGroup, cfg config.Config, quoteHandler *handlers.QuoteHandler, webhookHandler *handlers.WebhookHandler, authHandler *handlers.AuthHandler) {
	rg.GET("/ping", ping)

	// The quote form is the only unauthenticated write surface, so it
	// gets a rate limit.
	rg.POST(PathQuotes, quoteRateLimiter(cfg), quoteHandler.SubmitQuote)

	rg.POST(PathWebhooks+"/payment", webhookHandler.HandlePayment)

	rg.POST("/login", authHandler.Login)
	rg.POST("/logout", authHandler.Logout)
}

// ping godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func quoteRateLimiter(cfg config.Config) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(cfg.QuoteRateLimit), cfg.QuoteRateBurst)
	appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, try again shortly", http.StatusTooManyRequests)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
