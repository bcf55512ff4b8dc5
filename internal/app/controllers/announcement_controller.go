package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models/dto"
	"github.com/aimldept/portal/internal/app/services"
	"github.com/aimldept/portal/internal/middleware"
)

// AnnouncementController handles the announcement endpoints.
type AnnouncementController struct {
	announcementService *services.AnnouncementService
	logger              zerolog.Logger
}

// NewAnnouncementController creates a new AnnouncementController.
func NewAnnouncementController(announcementService *services.AnnouncementService, logger zerolog.Logger) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
		logger:              logger,
	}
}

// List handles GET /api/announcements, scoped to the caller's subjects.
func (c *AnnouncementController) List(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access token is required"})
		return
	}

	announcements, err := c.announcementService.List(identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcements)
}

// Create handles POST /api/announcements.
func (c *AnnouncementController) Create(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access token is required"})
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	announcement, err := c.announcementService.Create(identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, announcement)
}

// Delete handles DELETE /api/announcements/:id, owner only.
func (c *AnnouncementController) Delete(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access token is required"})
		return
	}

	if err := c.announcementService.Delete(identity, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Announcement deleted successfully"})
}
