package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models/dto"
	"github.com/aimldept/portal/internal/app/services"
	"github.com/aimldept/portal/internal/middleware"
)

// FacultyController handles faculty login and profile endpoints.
type FacultyController struct {
	facultyService *services.FacultyService
	logger         zerolog.Logger
}

// NewFacultyController creates a new FacultyController.
func NewFacultyController(facultyService *services.FacultyService, logger zerolog.Logger) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
		logger:         logger,
	}
}

// Login handles POST /faculty/login and returns a session token.
func (c *FacultyController) Login(ctx *gin.Context) {
	var req dto.FacultyLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	token, err := c.facultyService.Login(req.FacultyID, req.Password)
	if err != nil {
		c.logger.Warn().Str("identifier", req.FacultyID).Msg("Faculty login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// GetSelf handles GET /api/faculty/me.
func (c *FacultyController) GetSelf(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access token is required"})
		return
	}

	profile, err := c.facultyService.GetSelf(identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
