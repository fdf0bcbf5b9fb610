package backup

import (
	"github.com/gin-gonic/gin"
)

// SetupBackupRoutes registers the admin backup endpoints
func SetupBackupRoutes(rg *gin.RouterGroup, controller *Controller, adminAuth gin.HandlerFunc) {
	admin := rg.Group("/admin")
	admin.Use(adminAuth)
	{
		admin.GET("/export/backup", controller.ExportBackup)     // GET /api/v1/admin/export/backup
		admin.GET("/export/settings", controller.ExportSettings) // GET /api/v1/admin/export/settings
		admin.POST("/import", controller.Import)                 // POST /api/v1/admin/import
	}
}
