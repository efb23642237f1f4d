package routes

import (
	"academic-directory-api/config"
	"academic-directory-api/controllers"
	"academic-directory-api/middleware"
	"academic-directory-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Options struct {
	DB         *gorm.DB // nil uses config.DB
	RankingJob *services.RankingJobService
	Ranking    config.RankingSettings
	JWTSecret  string
}

func SetupRoutes(router *gin.Engine, opts Options) {
	rankingJob := opts.RankingJob
	if rankingJob == nil {
		rankingJob = services.NewRankingJobService(opts.DB)
	}

	// Function-style trigger: OPTIONS probe plus any method runs the job.
	functions := router.Group("/functions/v1")
	functions.Use(middleware.FunctionCORS())
	{
		ranking := controllers.NewRankingController(rankingJob, opts.Ranking.TriggerSource, opts.Ranking.RecordRuns)
		functions.Any("/update-rankings", ranking.UpdateRankings)
	}

	v1 := router.Group("/api/v1")
	{
		public := v1.Group("")
		{
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Academic Directory API is running",
				})
			})

			directory := controllers.NewDirectoryController(
				services.NewProfessorService(opts.DB),
				services.NewPublicationService(opts.DB),
			)
			public.GET("/professors", directory.ListProfessors)
			public.GET("/professors/:id", directory.GetProfessor)
			public.GET("/professors/:id/publications", directory.ListProfessorPublications)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.NewAuthMiddleware(opts.DB, opts.JWTSecret), middleware.RequireRole(opts.Ranking.AdminRoleID))
		{
			ranking := controllers.NewRankingController(rankingJob, "admin", opts.Ranking.RecordRuns)
			admin.POST("/rankings/recompute", ranking.UpdateRankings)

			runs := controllers.NewRankingRunController(services.NewRankingRunService(opts.DB))
			admin.GET("/rankings/runs/:id", runs.GetRun)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"success": false, "error": "Endpoint not found"})
	})
}
