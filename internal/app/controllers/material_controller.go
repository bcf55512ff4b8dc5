package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models/dto"
	"github.com/aimldept/portal/internal/app/services"
	"github.com/aimldept/portal/internal/middleware"
)

// MaterialController handles the course material endpoints.
type MaterialController struct {
	materialService *services.MaterialService
	logger          zerolog.Logger
}

// NewMaterialController creates a new MaterialController.
func NewMaterialController(materialService *services.MaterialService, logger zerolog.Logger) *MaterialController {
	return &MaterialController{
		materialService: materialService,
		logger:          logger,
	}
}

// List handles GET /api/materials, scoped to the caller's subjects.
func (c *MaterialController) List(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access token is required"})
		return
	}

	materials, err := c.materialService.List(identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, materials)
}

// Create handles POST /api/materials.
func (c *MaterialController) Create(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access token is required"})
		return
	}

	var req dto.CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	material, err := c.materialService.Create(identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, material)
}

// Delete handles DELETE /api/materials/:id, owner only.
func (c *MaterialController) Delete(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access token is required"})
		return
	}

	if err := c.materialService.Delete(identity, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Material deleted successfully"})
}
