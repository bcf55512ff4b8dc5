package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models/dto"
	"github.com/aimldept/portal/internal/app/services"
	"github.com/aimldept/portal/internal/middleware"
)

// AuthController handles the student-facing authentication endpoints.
type AuthController struct {
	studentService *services.StudentService
	adminKey       string
	logger         zerolog.Logger
}

// NewAuthController creates a new AuthController.
func NewAuthController(studentService *services.StudentService, adminKey string, logger zerolog.Logger) *AuthController {
	return &AuthController{
		studentService: studentService,
		adminKey:       adminKey,
		logger:         logger,
	}
}

// StudentLogin handles POST /login. The endpoint serves two credential
// schemes: regular student login, and the admin sentinel login that yields an
// admin-session signal instead of a redirect.
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	result, err := c.studentService.Login(req.StudentID, req.Password)
	if err != nil {
		c.logger.Warn().Str("studentId", req.StudentID).Msg("Student login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if result.Admin {
		ctx.JSON(http.StatusOK, dto.AdminLoginResponse{
			Admin:    true,
			AdminKey: c.adminKey,
			Redirect: result.Redirect,
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentLoginResponse{Redirect: result.Redirect})
}

// ChangePassword handles POST /change-password.
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	if err := c.studentService.ChangePassword(req.StudentID, req.OldPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Password updated successfully. You can now log in with your new password.",
	})
}
