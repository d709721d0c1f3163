package routes

import (
	"muebleria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathQuotations = "/quotations"

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("", quotationHandler.ListQuotations)
		quotations.GET("/:quotation_id", quotationHandler.GetQuotationByID)
		quotations.POST("/:quotation_id/confirm", quotationHandler.ConfirmSale)
	}
}
