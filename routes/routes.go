package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/saralbooks/ledger_backend/controllers"
)

func RegisterRoutes(router *gin.Engine, ct *controllers.Controller) {
	api := router.Group("/api")
	{
		api.GET("/inventory", ct.ListInventoryItems)
		api.POST("/inventory", ct.CreateInventoryItem)
		api.GET("/inventory/:id", ct.GetInventoryItem)
		api.DELETE("/inventory/:id", ct.DeleteInventoryItem)

		api.GET("/purchases", ct.ListPurchases)
		api.POST("/purchases", ct.RecordPurchase)

		api.GET("/sales", ct.ListSales)
		api.POST("/sales", ct.RecordSale)

		api.GET("/expenses", ct.ListExpenses)
		api.POST("/expenses", ct.CreateExpense)

		api.GET("/reports/summary", ct.ReportSummary)
	}
}
