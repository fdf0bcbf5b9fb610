package booking

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"seatwise/internal/availability"
	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// SessionHeader identifies the visitor's booking session
const SessionHeader = "X-Session-ID"

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetConfig(ctx *gin.Context) {
	cfg, err := c.service.Config(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load configuration", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Configuration retrieved successfully", cfg, nil)
}

func (c *Controller) GetCalendar(ctx *gin.Context) {
	from, err := availability.ParseDate(ctx.Query("from"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid from date", nil, err.Error())
		return
	}
	to, err := availability.ParseDate(ctx.Query("to"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid to date", nil, err.Error())
		return
	}
	if to.Before(from) {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid date range", nil, "to must not be before from")
		return
	}
	if to.Sub(from) > 366*24*time.Hour {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid date range", nil, "range must not exceed one year")
		return
	}

	dates, err := c.service.Calendar(ctx.Request.Context(), from, to)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load calendar", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Calendar retrieved successfully", gin.H{
		"availableDates": dates,
	}, nil)
}

func (c *Controller) GetUnits(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Date is required", nil, "missing date query parameter")
		return
	}

	units, err := c.service.Units(ctx.Request.Context(), ctx.GetHeader(SessionHeader), date)
	if err != nil {
		c.respondError(ctx, err, "Failed to load units")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Units retrieved successfully", units, nil)
}

func (c *Controller) SelectDate(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	var req SelectDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	selection, err := c.service.SelectDate(ctx.Request.Context(), sessionID, req.Date)
	if err != nil {
		c.respondError(ctx, err, "Failed to select date")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Date selected", selection, nil)
}

func (c *Controller) ToggleUnit(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	var req ToggleUnitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	selection, err := c.service.Toggle(ctx.Request.Context(), sessionID, req.UnitID)
	if err != nil {
		c.respondError(ctx, err, "Failed to toggle unit")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection updated", selection, nil)
}

func (c *Controller) GetSummary(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	summary, err := c.service.Summary(ctx.Request.Context(), sessionID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load summary", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Summary retrieved successfully", summary, nil)
}

func (c *Controller) Confirm(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	var req ConfirmBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	reservation, err := c.service.Confirm(ctx.Request.Context(), sessionID, ConfirmRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
	})
	if err != nil {
		c.respondError(ctx, err, "Failed to confirm booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Reservation created successfully", reservation, nil)
}

func (c *Controller) sessionID(ctx *gin.Context) (string, bool) {
	sessionID := ctx.GetHeader(SessionHeader)
	if sessionID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Session ID is required", nil, "missing "+SessionHeader+" header")
		return "", false
	}
	return sessionID, true
}

// respondError maps booking-flow constraint errors to notices the widget
// can show to the customer; everything else is a server error.
func (c *Controller) respondError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrSystemInactive),
		errors.Is(err, ErrDateUnavailable),
		errors.Is(err, ErrNoActiveDate),
		errors.Is(err, ErrUnknownUnit),
		errors.Is(err, ErrUnitOccupied),
		errors.Is(err, ErrSelectionFull),
		errors.Is(err, ErrTooFewUnits),
		errors.Is(err, ErrDailyLimitReached),
		errors.Is(err, ErrSelectionChanged):
		response.Notice(ctx, err.Error())
	default:
		if strings.HasPrefix(err.Error(), "invalid") {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, message, nil, err.Error())
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, message, nil, err.Error())
	}
}
