package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecamli/registra/internal/app/controllers"
	"github.com/ecamli/registra/internal/app/models/dto"
	"github.com/ecamli/registra/internal/middleware"
)

// SetupRouter configures all application routes. Reads are public; every
// mutation sits behind JWT auth so the capability set is always resolved
// before a privileged operation runs.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	attendanceController *controllers.AttendanceController,
	gradeController *controllers.GradeController,
	reportController *controllers.ReportController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Public read routes ---
	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.GET("/by-identifier/:identifier", studentController.GetStudentByIdentifier)
		students.GET("/:id/enrollments", enrollmentController.GetStudentEnrollments)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
	}

	v1.GET("/attendance", attendanceController.GetAttendance)
	v1.GET("/grades/:enrollmentId", gradeController.GetGrade)

	reports := v1.Group("/reports")
	{
		reports.GET("/students/:studentId/report-card", reportController.GetReportCard)
		reports.GET("/students/:studentId/attendance-summary", reportController.GetAttendanceSummary)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/students", studentController.CreateStudent)
		authenticated.DELETE("/students/:id", studentController.DeleteStudent)

		authenticated.POST("/courses", courseController.CreateCourse)
		authenticated.DELETE("/courses/:id", courseController.DeleteCourse)

		authenticated.POST("/enrollments", enrollmentController.Enroll)
		authenticated.DELETE("/enrollments/:id", enrollmentController.Withdraw)

		authenticated.POST("/attendance", attendanceController.MarkAttendance)
		authenticated.PUT("/grades", gradeController.RecordGrade)

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.GetNotifications)
			notifications.GET("/unread-count", notificationController.GetUnreadCount)
			notifications.POST("/mark-all-read", notificationController.MarkAllRead)
			notifications.DELETE("", notificationController.ClearAll)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
