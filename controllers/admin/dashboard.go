package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aayushsah6969/ShoeStore/models"
)

const lowStockThreshold = 5

// GET /api/admin/stats
//
// Dashboard headline numbers: catalog size, order count, revenue, low-stock
// and pending-order counts.
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalProducts int64
		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute stats"})
			return
		}

		var totalOrders int64
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute stats"})
			return
		}

		var totalSales float64
		if err := db.Model(&models.Order{}).
			Where("delivery_status <> ?", models.DeliveryStatusCancelled).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&totalSales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute stats"})
			return
		}

		var lowStock int64
		if err := db.Model(&models.Product{}).
			Where("stock_quantity <= ?", lowStockThreshold).
			Count(&lowStock).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute stats"})
			return
		}

		var pendingOrders int64
		if err := db.Model(&models.Order{}).
			Where("delivery_status = ?", models.DeliveryStatusPending).
			Count(&pendingOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_products": totalProducts,
			"total_orders":   totalOrders,
			"total_sales":    totalSales,
			"low_stock":      lowStock,
			"pending_orders": pendingOrders,
		})
	}
}
