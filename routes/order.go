package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Aayushsah6969/ShoeStore/controllers/order"
	"github.com/Aayushsah6969/ShoeStore/middleware"
)

// SetupOrderRoutes registers the "/api/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	{
		// User endpoints (storefront session)
		orders.POST("/create", middleware.RequireUser(), orderControllers.CreateOrderHandler(db))
		orders.GET("/my-orders", middleware.RequireUser(), orderControllers.GetMyOrdersHandler(db))

		// Admin endpoints (dashboard session)
		admin := orders.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/getAllOrders", orderControllers.GetAllOrdersHandler(db))
			admin.GET("/:id", orderControllers.GetOrderByIDHandler(db))
			admin.PUT("/update/:id", orderControllers.UpdateOrderStatusHandler(db))
			admin.PUT("/payment-status/:id", orderControllers.UpdatePaymentStatusHandler(db))
			admin.DELETE("/delete/:id", orderControllers.DeleteOrderHandler(db))
		}

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
