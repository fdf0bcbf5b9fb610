package reservations

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetReservations(ctx *gin.Context) {
	list, err := c.service.List(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load reservations", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservations retrieved successfully", list, nil)
}

func (c *Controller) GetReservation(ctx *gin.Context) {
	number := ctx.Param("number")

	reservation, err := c.service.Get(ctx.Request.Context(), number)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get reservation", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation retrieved successfully", reservation, nil)
}

func (c *Controller) UpdateStatus(ctx *gin.Context) {
	number := ctx.Param("number")

	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	reservation, err := c.service.UpdateStatus(ctx.Request.Context(), number, Status(req.Status))
	if err != nil {
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		} else if strings.Contains(err.Error(), "cannot change") || strings.Contains(err.Error(), "invalid status") {
			statusCode = http.StatusConflict
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update reservation status", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation status updated successfully", reservation, nil)
}

func (c *Controller) DeleteReservation(ctx *gin.Context) {
	number := ctx.Param("number")

	if err := c.service.Delete(ctx.Request.Context(), number); err != nil {
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete reservation", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation deleted successfully", nil, nil)
}

func (c *Controller) DeleteAllReservations(ctx *gin.Context) {
	if err := c.service.DeleteAll(ctx.Request.Context()); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete reservations", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "All reservations deleted", nil, nil)
}

func (c *Controller) ExportCSV(ctx *gin.Context) {
	list, err := c.service.List(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load reservations", nil, err.Error())
		return
	}

	now := time.Now().UTC()
	data, err := ExportCSV(list, now)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to export reservations", nil, err.Error())
		return
	}

	filename := fmt.Sprintf("reservations_%s.csv", now.Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
