package reservations

import (
	"github.com/gin-gonic/gin"
)

// SetupReservationRoutes registers the admin reservation endpoints
func SetupReservationRoutes(rg *gin.RouterGroup, controller *Controller, adminAuth gin.HandlerFunc) {
	admin := rg.Group("/admin/reservations")
	admin.Use(adminAuth)
	{
		admin.GET("", controller.GetReservations)                 // GET /api/v1/admin/reservations
		admin.GET("/:number", controller.GetReservation)          // GET /api/v1/admin/reservations/:number
		admin.PATCH("/:number/status", controller.UpdateStatus)   // PATCH /api/v1/admin/reservations/:number/status
		admin.DELETE("/:number", controller.DeleteReservation)    // DELETE /api/v1/admin/reservations/:number
		admin.DELETE("", controller.DeleteAllReservations)        // DELETE /api/v1/admin/reservations
	}

	export := rg.Group("/admin/export")
	export.Use(adminAuth)
	{
		export.GET("/reservations.csv", controller.ExportCSV) // GET /api/v1/admin/export/reservations.csv
	}
}
