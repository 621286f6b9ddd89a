package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productController "github.com/Aayushsah6969/ShoeStore/controllers/product"
	"github.com/Aayushsah6969/ShoeStore/middleware"
)

// SetupProductRoutes registers the "/api/products/*" endpoints. Browsing is
// public; mutation requires the admin session.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/api/products")
	{
		products.GET("", productController.GetProducts(db))
		products.GET("/:id", productController.GetProductByID(db))

		admin := products.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/upload", productController.CreateProduct(db))
			admin.PUT("/update/:id", productController.UpdateProduct(db))
			admin.DELETE("/delete/:id", productController.DeleteProduct(db))
			admin.POST("/import-excel", productController.ImportProductsFromExcel(db))
			admin.GET("/export-excel", productController.ExportProductsToExcel(db))
		}
	}
}
