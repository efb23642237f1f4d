package main

import (
	"log"
	"os"

	"academic-directory-api/config"
	"academic-directory-api/middleware"
	"academic-directory-api/monitor"
	"academic-directory-api/routes"
	"academic-directory-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, logWriter := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}
	config.ReloadMailerConfig()
	config.InitDB()

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logWriter
	gin.DefaultErrorWriter = logWriter

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})
	router.Use(middleware.CORSMiddleware())

	settings := config.LoadRankingSettings()
	metrics := services.NewRankingMetrics()
	if _, err := monitor.RegisterMetrics(router, metrics.Collectors()...); err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}
	monitor.RegisterLogsRoute(router)

	rankingJob := services.NewRankingJobService(config.DB).
		WithMetrics(metrics).
		WithAlerter(services.NewMailRankingAlerter(settings.AlertEmails))

	routes.SetupRoutes(router, routes.Options{
		DB:         config.DB,
		RankingJob: rankingJob,
		Ranking:    settings,
		JWTSecret:  os.Getenv("JWT_SECRET"),
	})

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if settings.RecordRuns {
		log.Printf("Ranking runs are recorded in ranking_runs (trigger %q)", settings.TriggerSource)
	}
	if ginMode == "release" {
		log.Printf("Running in production mode")
	} else {
		log.Printf("Running in development mode")
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
