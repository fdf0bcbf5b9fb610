package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
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

// ImportRequest wraps a snapshot with the required confirmation flag
type ImportRequest struct {
	Confirm  bool            `json:"confirm"`
	Snapshot json.RawMessage `json:"snapshot" binding:"required"`
}

func (c *Controller) ExportBackup(ctx *gin.Context) {
	snapshot, err := c.service.Export(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to export backup", nil, err.Error())
		return
	}

	filename := fmt.Sprintf("backup_%s.json", time.Now().UTC().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.JSON(http.StatusOK, snapshot)
}

func (c *Controller) ExportSettings(ctx *gin.Context) {
	snapshot, err := c.service.ExportSettings(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to export settings", nil, err.Error())
		return
	}

	filename := fmt.Sprintf("settings_%s.json", time.Now().UTC().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.JSON(http.StatusOK, snapshot)
}

func (c *Controller) Import(ctx *gin.Context) {
	var req ImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	snapshot, err := c.service.Import(ctx.Request.Context(), req.Snapshot, req.Confirm)
	if err != nil {
		switch {
		case errors.Is(err, ErrConfirmationRequired):
			response.RespondJSON(ctx, "error", http.StatusPreconditionRequired, "Import requires confirmation", nil, err.Error())
		case errors.Is(err, ErrInvalidSnapshot):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid snapshot", nil, err.Error())
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to import backup", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Backup imported successfully", gin.H{
		"reservations": len(snapshot.Reservations),
		"timestamp":    snapshot.Timestamp,
		"version":      snapshot.Version,
	}, nil)
}
