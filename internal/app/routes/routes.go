package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aimldept/portal/internal/app/controllers"
	"github.com/aimldept/portal/internal/middleware"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	facultyController *controllers.FacultyController,
	announcementController *controllers.AnnouncementController,
	materialController *controllers.MaterialController,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
) {
	// Student-facing endpoints. /login also serves the admin sentinel path.
	router.POST("/login", authController.StudentLogin)
	router.POST("/change-password", authController.ChangePassword)

	// Faculty login is public; everything under /api/faculty requires a token.
	router.POST("/faculty/login", facultyController.Login)

	api := router.Group("/api")

	// Admin-guarded roster CRUD.
	students := api.Group("/students")
	students.Use(adminMiddleware.AdminKeyRequired())
	{
		students.GET("", studentController.ListStudents)
		students.POST("", studentController.AddStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Token-guarded faculty endpoints.
	faculty := api.Group("/faculty")
	faculty.Use(authMiddleware.JWTAuth())
	{
		faculty.GET("/me", facultyController.GetSelf)
	}

	announcements := api.Group("/announcements")
	announcements.Use(authMiddleware.JWTAuth())
	{
		announcements.GET("", announcementController.List)
		announcements.POST("", announcementController.Create)
		announcements.DELETE("/:id", announcementController.Delete)
	}

	materials := api.Group("/materials")
	materials.Use(authMiddleware.JWTAuth())
	{
		materials.GET("", materialController.List)
		materials.POST("", materialController.Create)
		materials.DELETE("/:id", materialController.Delete)
	}
}
