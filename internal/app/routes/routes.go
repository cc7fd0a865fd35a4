package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/luct-faculty/portal/internal/app/controllers"
	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/middleware"
)

// SetupRouter configures all application routes. Each group carries an
// explicit role allow-list; a role missing from the list gets 403.
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.AuthController.Register)
		auth.POST("/login", ctrl.AuthController.Login)
	}

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// --- Authenticated routes (any role) ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", ctrl.AuthController.GetMe)
		authenticated.GET("/faculties", ctrl.CourseController.GetAllFaculties)
		authenticated.GET("/monitoring", ctrl.MonitoringController.GetClassOverview)

		courses := authenticated.Group("/courses")
		{
			courses.GET("", ctrl.CourseController.GetAllCourses)
			courses.GET("/:id", ctrl.CourseController.GetCourseByID)

			coursesPL := courses.Group("")
			coursesPL.Use(authMiddleware.RoleRequired(models.RolePL))
			{
				coursesPL.POST("", ctrl.CourseController.CreateCourse)
				coursesPL.PUT("/:id", ctrl.CourseController.UpdateCourse)
				coursesPL.DELETE("/:id", ctrl.CourseController.DeleteCourse)
			}
		}

		classes := authenticated.Group("/classes")
		{
			classes.GET("", ctrl.ClassController.GetAllClasses)
			classes.GET("/:id", ctrl.ClassController.GetClassByID)

			classesPL := classes.Group("")
			classesPL.Use(authMiddleware.RoleRequired(models.RolePL))
			{
				classesPL.POST("", ctrl.ClassController.CreateClass)
				classesPL.PUT("/:id", ctrl.ClassController.UpdateClass)
				classesPL.DELETE("/:id", ctrl.ClassController.DeleteClass)
			}
		}

		reports := authenticated.Group("/reports")
		{
			reportsLecturer := reports.Group("")
			reportsLecturer.Use(authMiddleware.RoleRequired(models.RoleLecturer))
			{
				reportsLecturer.POST("", ctrl.ReportController.CreateReport)
			}

			reportsLeaders := reports.Group("")
			reportsLeaders.Use(authMiddleware.RoleRequired(models.RolePL, models.RolePRL))
			{
				reportsLeaders.GET("", ctrl.ReportController.ListReports)
			}
		}

		lecturer := authenticated.Group("/lecturer")
		lecturer.Use(authMiddleware.RoleRequired(models.RoleLecturer))
		{
			lecturer.GET("/overview/stats", ctrl.ReportController.GetOverviewStats)
			lecturer.GET("/overview/recent-reports", ctrl.ReportController.GetRecentReports)
			lecturer.GET("/classes", ctrl.ClassController.GetMyClasses)
			lecturer.GET("/reports", ctrl.ReportController.GetMyReports)
			lecturer.GET("/ratings", ctrl.RatingController.GetLecturerRatings)
		}

		student := authenticated.Group("/student")
		student.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			student.GET("/enrolments", ctrl.StudentController.GetEnrolments)
			student.POST("/enrolments", ctrl.StudentController.Enrol)
			student.GET("/reports/enrolled", ctrl.StudentController.GetEnrolledReports)
			student.GET("/attendance/:reportId", ctrl.StudentController.GetAttendanceStatus)
			student.POST("/attendance", ctrl.StudentController.MarkAttendance)
		}

		ratings := authenticated.Group("/ratings")
		ratings.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			ratings.GET("/available-classes", ctrl.RatingController.GetAvailableClasses)
			ratings.POST("", ctrl.RatingController.CreateRating)
			ratings.GET("/my", ctrl.RatingController.GetMyRatings)
		}

		prl := authenticated.Group("/prl")
		prl.Use(authMiddleware.RoleRequired(models.RolePRL))
		{
			prl.GET("/reports", ctrl.PRLController.GetReports)
			prl.POST("/reports/:reportId/feedback", ctrl.PRLController.CreateFeedback)
			prl.GET("/courses", ctrl.PRLController.GetCourses)
			prl.GET("/monitoring", ctrl.PRLController.GetMonitoring)
			prl.GET("/rating", ctrl.PRLController.GetRatings)
			prl.GET("/classes", ctrl.PRLController.GetClasses)
		}

		pl := authenticated.Group("/pl")
		pl.Use(authMiddleware.RoleRequired(models.RolePL))
		{
			pl.POST("/classes/assign-lecturer", ctrl.ClassController.AssignLecturer)
			pl.GET("/monitoring/metrics", ctrl.MonitoringController.GetPortalMetrics)
			pl.GET("/reports", ctrl.ReportController.ListReports)
			pl.GET("/reports/:id", ctrl.ReportController.GetReportByID)
			pl.GET("/classes", ctrl.ClassController.GetAllClasses)
			pl.GET("/lecturers", ctrl.ClassController.GetLecturers)
		}
	}
}
