package routes

import (
	"log"

	_ "casamento_pe/docs" // This will be auto-generated
	"casamento_pe/internal/adapter/http/handlers"
	"casamento_pe/internal/adapter/persistence/memory"
	repository2 "casamento_pe/internal/adapter/persistence/repository"
	"casamento_pe/internal/config"
	"casamento_pe/internal/infrastructure/database"
	"casamento_pe/internal/infrastructure/payments"
	"casamento_pe/internal/usecase"
	"casamento_pe/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	giftRepo, contributionRepo := buildRepositories(cfg)

	// Demo mode must come up without credentials.
	if cfg.DemoMode && !cfg.MercadoPago.Configured() {
		cfg.MercadoPago.MockMode = true
	}
	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago)
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}

	giftUseCase := usecase.NewGiftUseCase(giftRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(giftRepo, gateway)
	reconciliationUseCase := usecase.NewReconciliationUseCase(contributionRepo, giftRepo, gateway)
	contributionUseCase := usecase.NewContributionUseCase(contributionRepo, giftRepo)

	giftHandler := handlers.NewGiftHandler(giftUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(reconciliationUseCase, cfg.MercadoPago.WebhookSecret)
	contributionHandler := handlers.NewContributionHandler(contributionUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRegistryRoutes(v1, giftHandler, checkoutHandler, webhookHandler, contributionHandler)
}

func buildRepositories(cfg *config.Config) (interfaces.IGiftRepository, interfaces.IContributionRepository) {
	if cfg.DemoMode {
		log.Printf("[routes][setup] demo mode: serving seeded in-memory catalog")
		return memory.NewGiftMemoryRepository(memory.SeedGifts()), memory.NewContributionMemoryRepository()
	}

	ddb := database.ConnectDynamoDB(cfg.Database)
	giftRepo := repository2.NewGiftDynamoRepository(ddb, cfg.Database.GiftsTable)
	contributionRepo := repository2.NewContributionDynamoRepository(ddb, cfg.Database.ContributionsTable)
	return giftRepo, contributionRepo
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
