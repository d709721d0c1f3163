package routes

import (
	"log"
	_ "muebleria_xpto/docs" // This will be auto-generated
	"muebleria_xpto/internal/adapter/http/handlers"
	repository2 "muebleria_xpto/internal/adapter/persistence/repository"
	"muebleria_xpto/internal/infrastructure/database"
	"muebleria_xpto/internal/usecase"
	"strconv"

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
	database.SeedCatalog(ddb)

	furnitureRepo := repository2.NewFurnitureDynamoRepository(ddb)
	variantRepo := repository2.NewVariantDynamoRepository(ddb)
	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)

	furnitureUseCase := usecase.NewFurnitureUseCase(furnitureRepo)
	variantUseCase := usecase.NewVariantUseCase(variantRepo)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, furnitureRepo, variantRepo)

	furnitureHandler := handlers.NewFurnitureHandler(furnitureUseCase)
	variantHandler := handlers.NewVariantHandler(variantUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, furnitureHandler, variantHandler)
	addQuotationRoutes(v1, quotationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
