package settings

import (
	"encoding/json"
	"net/http"
	"strings"

	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetSettings(ctx *gin.Context) {
	settings, err := c.service.Get(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load settings", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Settings retrieved successfully", settings, nil)
}

func (c *Controller) GetSection(ctx *gin.Context) {
	section := ctx.Param("section")

	data, err := c.service.GetSection(ctx.Request.Context(), section)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "unknown settings section") {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to load settings section", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Settings section retrieved successfully", data, nil)
}

func (c *Controller) UpdateSection(ctx *gin.Context) {
	section := ctx.Param("section")

	var payload json.RawMessage
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	settings, err := c.service.UpdateSection(ctx.Request.Context(), section, payload)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "unknown settings section") {
			statusCode = http.StatusNotFound
		} else if strings.Contains(err.Error(), "invalid") {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update settings section", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Settings updated successfully", settings, nil)
}

func (c *Controller) ResetSettings(ctx *gin.Context) {
	settings, err := c.service.Reset(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to reset settings", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Settings reset to defaults", settings, nil)
}
