package routes

import (
	"context"
	"log"
	"strconv"

	_ "doorway_ops/docs" // This will be auto-generated
	"doorway_ops/internal/adapter/http/handlers"
	"doorway_ops/internal/adapter/persistence/repository"
	"doorway_ops/internal/events"
	"doorway_ops/internal/infrastructure/calendar"
	"doorway_ops/internal/infrastructure/config"
	"doorway_ops/internal/infrastructure/database"
	"doorway_ops/internal/infrastructure/mail"
	"doorway_ops/internal/infrastructure/payments"
	"doorway_ops/internal/infrastructure/sms"
	"doorway_ops/internal/usecase"
	"doorway_ops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run loads the configuration, wires every layer and starts the server.
// Configuration is read once here; everything below gets it injected.
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb client: %v", err)
	}

	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.ClientsTable)
	jobRepo := repository.NewJobDynamoRepository(ddb, cfg.JobsTable)

	hub := events.NewHub()

	// Vendor integrations are optional: a missing credential leaves the
	// dependency nil and the usecases degrade as documented.
	var calendarSvc interfaces.ICalendarService
	if gcal, err := calendar.NewGoogleCalendarService(ctx, cfg.GoogleCredentialsJSON, cfg.GoogleCalendarID); err != nil {
		log.Printf("Google Calendar not configured: %v", err)
	} else {
		calendarSvc = gcal
	}

	var smsSender interfaces.ISMSSender
	if twilio, err := sms.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber); err != nil {
		log.Printf("Twilio SMS not configured: %v", err)
	} else {
		smsSender = twilio
	}

	var mailer interfaces.IInvoiceMailer
	if smtp, err := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom); err != nil {
		log.Printf("SMTP mailer not configured: %v", err)
	} else {
		mailer = smtp
	}

	var paymentGateway interfaces.IPaymentGateway
	if mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock); err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(clientRepo, jobRepo, hub, usecase.QuoteConfig{MockGeocoding: cfg.MockGeocoding})
	jobUseCase := usecase.NewJobUseCase(jobRepo, clientRepo, calendarSvc, smsSender, hub)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(jobRepo, mailer, hub)
	webhookUseCase := usecase.NewPaymentWebhookUseCase(jobRepo, clientRepo, paymentGateway, hub)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase, cfg.PaymentWebhookSecret)
	authHandler := handlers.NewAuthHandler(cfg.AdminSecret)
	eventsHandler := handlers.NewEventsHandler(hub)

	v1 := router.Group("/v1")
	addPublicRoutes(v1, cfg, quoteHandler, webhookHandler, authHandler)
	addAdminRoutes(v1, authHandler, jobHandler, clientHandler, invoiceHandler, eventsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
