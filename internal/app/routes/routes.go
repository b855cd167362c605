package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alqalam/college-backend/internal/app/controllers"
	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	programController *controllers.ProgramController,
	portalController *controllers.PortalController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/auth/me", authController.Me)

	// Admin surface: program CRUD and draft editing sessions
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		programs := admin.Group("/programs")
		{
			programs.GET("", programController.ListPrograms)
			programs.POST("", programController.CreateProgram)
			programs.GET("/:programKey", programController.GetProgram)
			programs.DELETE("/:programKey", programController.DeleteProgram)
			programs.POST("/:programKey/draft", programController.OpenDraft)
		}

		drafts := admin.Group("/drafts/:sessionId")
		{
			drafts.GET("", programController.GetDraft)
			drafts.DELETE("", programController.DiscardDraft)
			drafts.POST("/commit", programController.CommitDraft)
			drafts.PUT("/overview", programController.UpdateOverview)
			drafts.PUT("/lists", programController.UpdateLists)

			drafts.POST("/faculty-members", programController.AddFacultyMember)
			drafts.POST("/faculty-members/reorder", programController.ReorderFacultyMembers)
			drafts.PUT("/faculty-members/:memberId", programController.UpdateFacultyMember)
			drafts.DELETE("/faculty-members/:memberId", programController.RemoveFacultyMember)

			drafts.POST("/admission-requirements", programController.AddAdmissionRequirement)
			drafts.POST("/admission-requirements/reorder", programController.ReorderAdmissionRequirements)
			drafts.PUT("/admission-requirements/:requirementId", programController.UpdateAdmissionRequirement)
			drafts.DELETE("/admission-requirements/:requirementId", programController.RemoveAdmissionRequirement)

			drafts.POST("/statistics", programController.AddStatistic)
			drafts.POST("/statistics/reorder", programController.ReorderStatistics)
			drafts.PUT("/statistics/:statisticId", programController.UpdateStatistic)
			drafts.DELETE("/statistics/:statisticId", programController.RemoveStatistic)

			drafts.POST("/career-opportunities", programController.AddCareerOpportunity)
			drafts.POST("/career-opportunities/reorder", programController.ReorderCareerOpportunities)
			drafts.PUT("/career-opportunities/:careerId", programController.UpdateCareerOpportunity)
			drafts.DELETE("/career-opportunities/:careerId", programController.RemoveCareerOpportunity)

			years := drafts.Group("/years")
			{
				years.POST("", programController.AddAcademicYear)
				years.POST("/reorder", programController.ReorderAcademicYears)
				years.PUT("/:yearNumber", programController.UpdateAcademicYear)
				years.DELETE("/:yearNumber", programController.RemoveAcademicYear)

				years.POST("/:yearNumber/subjects", programController.AddSubject)
				years.POST("/:yearNumber/subjects/reorder", programController.ReorderSubjects)
				years.PUT("/:yearNumber/subjects/:subjectId", programController.UpdateSubject)
				years.DELETE("/:yearNumber/subjects/:subjectId", programController.RemoveSubject)
			}
		}
	}

	// Student portal surface
	portal := authenticated.Group("/portal")
	portal.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
	{
		portal.GET("/profile", portalController.Profile)
		portal.GET("/dashboard", portalController.Dashboard)
		portal.GET("/grades", portalController.Grades)
		portal.GET("/schedule", portalController.Schedule)
		portal.GET("/documents", portalController.Documents)
		portal.GET("/payments", portalController.Payments)
		portal.GET("/notifications", portalController.Notifications)
		portal.POST("/notifications/read", portalController.MarkNotificationRead)
	}
}
