package routes

import (
	"log"
	"time"

	_ "webux_bd/docs" // This will be auto-generated
	"webux_bd/internal/adapter/http/handlers"
	repository2 "webux_bd/internal/adapter/persistence/repository"
	"webux_bd/internal/infrastructure/cache"
	"webux_bd/internal/infrastructure/config"
	"webux_bd/internal/infrastructure/database"
	"webux_bd/internal/infrastructure/domains"
	"webux_bd/internal/usecase"
	"webux_bd/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg.AWS)

	orderRepo := repository2.NewOrderDynamoRepository(ddb, cfg.Tables.Orders)
	userRepo := repository2.NewUserDynamoRepository(ddb, cfg.Tables.Users)

	var sharedCache interfaces.ICache
	if cfg.Redis.Addr != "" {
		sharedCache = cache.NewRedisCache(cfg.Redis.Addr, "webux_bd")
	} else {
		log.Printf("[cache] REDIS_ADDR not set, caching and token revocation disabled")
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(orderUseCase, cfg.WhatsAppNumber)
	authUseCase := usecase.NewAuthUseCase(userRepo, sharedCache, usecase.AuthConfig{
		AdminEmail: cfg.Auth.AdminEmail,
		JWTSecret:  cfg.Auth.JWTSecret,
		TokenTTL:   time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
	})

	advisor := domains.NewGeminiAdvisor(cfg.Gemini.APIKey, cfg.Gemini.Model)
	domainUseCase := usecase.NewDomainUseCase(advisor, sharedCache, nil)

	authHandler := handlers.NewAuthHandler(authUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	domainHandler := handlers.NewDomainHandler(domainUseCase)
	catalogHandler := handlers.NewCatalogHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, authUseCase)
	addCatalogRoutes(v1, catalogHandler, domainHandler)
	addOrderRoutes(v1, orderHandler, checkoutHandler, authUseCase)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
