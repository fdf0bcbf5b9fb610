package settings

import (
	"github.com/gin-gonic/gin"
)

// SetupSettingsRoutes registers the admin settings endpoints. The caller
// supplies the auth middleware so route wiring stays in one place.
func SetupSettingsRoutes(rg *gin.RouterGroup, controller *Controller, adminAuth gin.HandlerFunc) {
	admin := rg.Group("/admin/settings")
	admin.Use(adminAuth)
	{
		admin.GET("", controller.GetSettings)              // GET /api/v1/admin/settings
		admin.GET("/:section", controller.GetSection)      // GET /api/v1/admin/settings/:section
		admin.PUT("/:section", controller.UpdateSection)   // PUT /api/v1/admin/settings/:section
		admin.POST("/reset", controller.ResetSettings)     // POST /api/v1/admin/settings/reset
	}
}
