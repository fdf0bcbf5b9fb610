package booking

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes registers the public booking widget endpoints
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	public := rg.Group("/booking")
	{
		public.GET("/config", controller.GetConfig)     // GET /api/v1/booking/config
		public.GET("/calendar", controller.GetCalendar) // GET /api/v1/booking/calendar?from=&to=
		public.GET("/units", controller.GetUnits)       // GET /api/v1/booking/units?date=

		public.POST("/session/date", controller.SelectDate)   // POST /api/v1/booking/session/date
		public.POST("/session/toggle", controller.ToggleUnit) // POST /api/v1/booking/session/toggle
		public.GET("/session/summary", controller.GetSummary) // GET /api/v1/booking/session/summary

		public.POST("/confirm", controller.Confirm) // POST /api/v1/booking/confirm
	}
}
