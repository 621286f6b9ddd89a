package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/Aayushsah6969/ShoeStore/controllers/user"
	"github.com/Aayushsah6969/ShoeStore/middleware"
)

// SetupUserRoutes registers the "/api/users/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/api/users")
	{
		users.POST("/signup", userControllers.Signup(db))
		users.POST("/login", userControllers.Login(db))
		users.GET("/logout", userControllers.Logout())
		users.POST("/admin-login", userControllers.AdminLogin(db))
		users.GET("/admin-logout", userControllers.AdminLogout())

		users.GET("/me", middleware.RequireUser(), userControllers.Me(db))
	}
}
