package routes

import (
	"ims-backend/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Product catalog routes
		api.POST("/products", controllers.CreateProduct)
		api.GET("/products", controllers.ListProducts)
		api.GET("/products/:id", controllers.GetProductByID)
		api.PUT("/products/:id", controllers.UpdateProduct)
		api.DELETE("/products/:id", controllers.DeleteProduct)

		// Receipt reconciliation routes
		api.POST("/receipts/reconcile", controllers.ReconcileReceipt)
		api.GET("/receipts", controllers.GetReceiptHistory)
		api.GET("/receipts/:id", controllers.GetReceiptDetails)
	}
}
