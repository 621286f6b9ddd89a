package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/Aayushsah6969/ShoeStore/controllers/admin"
	userControllers "github.com/Aayushsah6969/ShoeStore/controllers/user"
	"github.com/Aayushsah6969/ShoeStore/middleware"
)

// SetupAdminRoutes registers the "/api/admin/*" endpoints. Requires the
// admin session cookie.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/me", userControllers.AdminMe(db))
		admin.GET("/stats", adminController.GetDashboardStats(db))
		admin.GET("/users", userControllers.GetAllUsers(db))
	}
}
