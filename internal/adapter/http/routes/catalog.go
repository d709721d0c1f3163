package routes

import (
	"muebleria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFurnitureItems = "/furniture-items"
	PathVariants       = "/variants"
)

func addCatalogRoutes(rg *gin.RouterGroup, furnitureHandler *handlers.FurnitureHandler, variantHandler *handlers.VariantHandler) {
	items := rg.Group(PathFurnitureItems)
	{
		items.POST("", furnitureHandler.CreateFurnitureItem)
		items.GET("", furnitureHandler.ListFurnitureItems)
		items.GET("/:furniture_id", furnitureHandler.GetFurnitureItemByID)
		items.PUT("/:furniture_id", furnitureHandler.UpdateFurnitureItem)
		items.PATCH("/:furniture_id", furnitureHandler.PatchFurnitureItem)
		items.PATCH("/:furniture_id/activate", furnitureHandler.ActivateFurnitureItem)
		items.PATCH("/:furniture_id/deactivate", furnitureHandler.DeactivateFurnitureItem)
	}

	variants := rg.Group(PathVariants)
	{
		variants.POST("", variantHandler.CreateVariant)
		variants.GET("", variantHandler.ListVariants)
		variants.GET("/:variant_id", variantHandler.GetVariantByID)
	}
}
