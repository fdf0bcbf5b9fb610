package admin

import (
	"errors"
	"net/http"

	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	session, err := c.service.Login(ctx.Request.Context(), LoginAttempt{
		Password:  req.Password,
		IP:        ctx.ClientIP(),
		UserAgent: ctx.Request.UserAgent(),
	})
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid credentials", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Login failed", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Login successful", session, nil)
}

func (c *Controller) GetLoginHistory(ctx *gin.Context) {
	history, err := c.service.LoginHistory(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load login history", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Login history retrieved successfully", history, nil)
}

func (c *Controller) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.service.Dashboard(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load dashboard", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Dashboard retrieved successfully", dashboard, nil)
}

func (c *Controller) ResetAll(ctx *gin.Context) {
	if err := c.service.ResetAll(ctx.Request.Context()); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to reset system", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "System reset completed", nil, nil)
}
