// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"seatwise/internal/admin"
	"seatwise/internal/backup"
	"seatwise/internal/booking"
	"seatwise/internal/notifications"
	"seatwise/internal/reservations"
	"seatwise/internal/settings"
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/middleware"
	"seatwise/internal/shared/storage"
	"seatwise/pkg/cache"
	"seatwise/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	store    storage.DocumentStore
	producer notifications.Producer
	log      *logger.Logger

	// shared services wired across route groups
	settingsService    settings.Service
	reservationService reservations.Service
	adminRepo          admin.Repository
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, store storage.DocumentStore, producer notifications.Producer, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		store:    store,
		producer: producer,
		log:      log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	adminAuth := middleware.AdminAuth(r.config)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Shared services first: booking, admin and backup all sit on
		// top of settings and reservations.
		r.settingsService = settings.NewService(settings.NewRepository(r.store, r.log))
		r.reservationService = reservations.NewService(
			reservations.NewRepository(r.store, r.log),
			r.producer,
			r.log,
		)
		r.adminRepo = admin.NewRepository(r.store, r.log)

		r.setupBookingRoutes(api)
		r.setupSettingsRoutes(api, adminAuth)
		r.setupReservationRoutes(api, adminAuth)
		r.setupAdminRoutes(api, adminAuth)
		r.setupBackupRoutes(api, adminAuth)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "seatwise",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "seatwise",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupBookingRoutes configures the public booking widget routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	sessions := booking.NewSessionStore(
		cache.NewService(cache.Client()),
		r.config.Redis.SelectionTTL,
	)
	bookingService := booking.NewService(r.settingsService, r.reservationService, sessions, r.log)
	bookingController := booking.NewController(bookingService)

	booking.SetupBookingRoutes(rg, bookingController)
}

// setupSettingsRoutes configures the admin settings routes
func (r *Router) setupSettingsRoutes(rg *gin.RouterGroup, adminAuth gin.HandlerFunc) {
	settingsController := settings.NewController(r.settingsService)
	settings.SetupSettingsRoutes(rg, settingsController, adminAuth)
}

// setupReservationRoutes configures the admin reservation routes
func (r *Router) setupReservationRoutes(rg *gin.RouterGroup, adminAuth gin.HandlerFunc) {
	reservationController := reservations.NewController(r.reservationService)
	reservations.SetupReservationRoutes(rg, reservationController, adminAuth)
}

// setupAdminRoutes configures login, dashboard and system reset
func (r *Router) setupAdminRoutes(rg *gin.RouterGroup, adminAuth gin.HandlerFunc) {
	adminService, err := admin.NewService(r.adminRepo, r.settingsService, r.reservationService, r.config, r.log)
	if err != nil {
		// A broken admin password configuration is unrecoverable
		panic(err)
	}
	adminController := admin.NewController(adminService)

	admin.SetupAdminRoutes(rg, adminController, adminAuth)
}

// setupBackupRoutes configures export and import
func (r *Router) setupBackupRoutes(rg *gin.RouterGroup, adminAuth gin.HandlerFunc) {
	backupService := backup.NewService(r.store, r.settingsService, r.reservationService, r.adminRepo, r.log)
	backupController := backup.NewController(backupService)

	backup.SetupBackupRoutes(rg, backupController, adminAuth)
}
