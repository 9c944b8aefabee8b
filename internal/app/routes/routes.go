package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/karthik/facultydesk/internal/app/controllers"
	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/app/models/dto"
	"github.com/karthik/facultydesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	facultyController *controllers.FacultyController,
	academicYearController *controllers.AcademicYearController,
	activityTypeController *controllers.ActivityTypeController,
	activityController *controllers.ActivityController,
	subjectController *controllers.SubjectController,
	appraisalController *controllers.AppraisalController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/admin/login", authController.AdminLogin)
		auth.POST("/login", authController.FacultyLogin)
	}

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})

	// --- Administrative routes ---
	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/dashboard", dashboardController.GetAdminDashboard)

		faculty := admin.Group("/faculty")
		{
			faculty.GET("", facultyController.GetAllFaculty)
			faculty.GET("/:id", facultyController.GetFacultyByID)
			faculty.POST("", facultyController.CreateFaculty)
			faculty.PUT("/:id", facultyController.UpdateFaculty)
			faculty.DELETE("/:id", facultyController.DeleteFaculty)
		}

		years := admin.Group("/academic-years")
		{
			years.GET("", academicYearController.GetAllAcademicYears)
			years.GET("/:id", academicYearController.GetAcademicYearByID)
			years.POST("", academicYearController.CreateAcademicYear)
			years.PUT("/:id", academicYearController.UpdateAcademicYear)
			years.DELETE("/:id", academicYearController.DeleteAcademicYear)
		}

		types := admin.Group("/activity-types")
		{
			types.GET("", activityTypeController.GetAllActivityTypes)
			types.GET("/:id", activityTypeController.GetActivityTypeByID)
			types.POST("", activityTypeController.CreateActivityType)
			types.PUT("/:id", activityTypeController.UpdateActivityType)
			types.DELETE("/:id", activityTypeController.DeleteActivityType)
		}

		activities := admin.Group("/activities")
		{
			activities.GET("", activityController.GetAllActivities)
			activities.GET("/:id", activityController.GetActivityByID)
			activities.POST("", activityController.CreateActivity)
			activities.PUT("/:id", activityController.UpdateActivity)
			activities.DELETE("/:id", activityController.DeleteActivity)
		}

		subjects := admin.Group("/subjects")
		{
			subjects.GET("", subjectController.GetAllSubjects)
			subjects.GET("/:courseCode", subjectController.GetSubjectByCode)
			subjects.POST("", subjectController.CreateSubject)
			subjects.PUT("/:courseCode", subjectController.UpdateSubject)
			subjects.DELETE("/:courseCode", subjectController.DeleteSubject)
		}

		appraisals := admin.Group("/appraisals")
		{
			appraisals.GET("", appraisalController.GetAllAppraisals)
			appraisals.GET("/:id", appraisalController.GetAppraisalByID)
			appraisals.POST("", appraisalController.CreateAppraisal)
			appraisals.PUT("/:id", appraisalController.UpdateAppraisal)
			appraisals.DELETE("/:id", appraisalController.DeleteAppraisal)
		}
	}

	// --- Faculty self-service routes ---
	me := v1.Group("/me")
	me.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleFaculty))
	{
		me.GET("/dashboard", dashboardController.GetMyDashboard)
		me.GET("/profile", facultyController.GetMyProfile)
		me.PUT("/profile", facultyController.UpdateMyProfile)
		me.GET("/subjects", subjectController.GetMySubjects)
		me.GET("/activities", activityController.GetMyActivities)
		me.POST("/activities", activityController.CreateMyActivity)
		me.PUT("/activities/:id", activityController.UpdateMyActivity)
	}
}
