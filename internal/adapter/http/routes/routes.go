package routes

import (
	"log"
	"os"
	"strconv"

	_ "schilderpro/docs" // This will be auto-generated
	"schilderpro/internal/adapter/http/handlers"
	"schilderpro/internal/infrastructure/email"
	"schilderpro/internal/infrastructure/forms"
	"schilderpro/internal/infrastructure/imaging"
	"schilderpro/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(resolvePort()))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	sender, err := email.NewSESSender()
	if err != nil {
		log.Fatalf("Email gateway not configured: %v", err)
	}
	deliveryUseCase := usecase.NewQuoteDeliveryUseCase(
		sender,
		getenvDefault("QUOTE_FROM_ADDRESS", "offerte@schilderpro.nl"),
		getenvDefault("QUOTE_BUSINESS_ADDRESS", "aanvragen@schilderpro.nl"),
	)
	quoteUseCase := usecase.NewQuoteUseCase(deliveryUseCase)

	generator, err := imaging.NewGeminiGenerator()
	if err != nil {
		log.Fatalf("Preview gateway not configured: %v", err)
	}
	previewUseCase := usecase.NewPreviewUseCase(generator)

	forwarder, err := forms.NewWeb3FormsClient()
	if err != nil {
		log.Fatalf("Contact gateway not configured: %v", err)
	}
	contactUseCase := usecase.NewContactUseCase(forwarder)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	previewHandler := handlers.NewPreviewHandler(previewUseCase)
	contactHandler := handlers.NewContactHandler(contactUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addPreviewRoutes(v1, previewHandler)
	addContactRoutes(v1, contactHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func resolvePort() int {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			return p
		}
		log.Printf("Invalid PORT value %q, falling back to %d", v, PORT)
	}
	return PORT
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
