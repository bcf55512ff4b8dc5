package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models/dto"
	"github.com/aimldept/portal/internal/app/services"
	"github.com/aimldept/portal/internal/middleware"
)

// StudentController handles the admin-guarded roster endpoints. The admin key
// check happens in the middleware before any of these run.
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// ListStudents handles GET /api/students.
func (c *StudentController) ListStudents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.studentService.ListStudents())
}

// AddStudent handles POST /api/students.
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	if err := c.studentService.AddStudent(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Student added"})
}

// UpdateStudent handles PUT /api/students/:id.
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	if err := c.studentService.UpdateStudent(id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student updated"})
}

// DeleteStudent handles DELETE /api/students/:id.
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted"})
}
