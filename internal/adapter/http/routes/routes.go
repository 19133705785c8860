package routes

import (
	"log"
	"os"
	"strconv"
	_ "threadquote/docs" // This will be auto-generated
	"threadquote/internal/adapter/http/handlers"
	repository2 "threadquote/internal/adapter/persistence/repository"
	"threadquote/internal/adapter/persistence/store"
	"threadquote/internal/infrastructure/catalog"
	"threadquote/internal/infrastructure/database"
	"threadquote/internal/infrastructure/email"
	"threadquote/internal/usecase"
	"threadquote/internal/usecase/interfaces"

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

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	tokenStore := store.NewShareTokenStore()

	var catalogProvider interfaces.ICatalogProvider
	supplierClient, err := catalog.NewSupplierClient(os.Getenv("SUPPLIER_API_URL"), os.Getenv("SUPPLIER_API_KEY"))
	if err != nil {
		log.Printf("Supplier catalog not configured: %v", err)
	} else {
		catalogProvider = supplierClient
	}

	var emailSender interfaces.IEmailSender
	smtpSender, err := email.NewSMTPSender()
	if err != nil {
		log.Printf("Email sender not configured: %v", err)
	} else {
		emailSender = smtpSender
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, catalogProvider)
	approvalUseCase := usecase.NewApprovalUseCase(quoteRepo, tokenStore, emailSender, os.Getenv("CLIENT_ORIGIN"))

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	shareHandler := handlers.NewQuoteShareHandler(approvalUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogProvider)

	v1 := router.Group("/v1")
	addQuoteRoutes(v1, quoteHandler, shareHandler)
	addCatalogRoutes(v1, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
