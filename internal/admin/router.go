package admin

import (
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the admin console endpoints. Login is the
// only unauthenticated route in the group.
func SetupAdminRoutes(rg *gin.RouterGroup, controller *Controller, adminAuth gin.HandlerFunc) {
	rg.POST("/admin/login", controller.Login) // POST /api/v1/admin/login

	admin := rg.Group("/admin")
	admin.Use(adminAuth)
	{
		admin.GET("/login-history", controller.GetLoginHistory) // GET /api/v1/admin/login-history
		admin.GET("/dashboard", controller.GetDashboard)        // GET /api/v1/admin/dashboard
		admin.POST("/reset-all", controller.ResetAll)           // POST /api/v1/admin/reset-all
	}
}
