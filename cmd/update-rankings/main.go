// Command update-rankings recomputes ranking_points for every professor.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"academic-directory-api/config"
	"academic-directory-api/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ReloadMailerConfig()
	config.InitDB()
	settings := config.LoadRankingSettings()

	var (
		year      int
		trigger   string
		recordRun bool
	)

	flag.IntVar(&year, "year", 0, "reference year for recency weighting (default: current year)")
	flag.StringVar(&trigger, "trigger", "cli", "trigger source label stored in ranking_runs")
	flag.BoolVar(&recordRun, "record-run", settings.RecordRuns, "record this run in ranking_runs")
	flag.Parse()

	if year < 0 {
		log.Fatal("year must be greater than or equal to 0")
	}

	job := services.NewRankingJobService(nil).
		WithAlerter(services.NewMailRankingAlerter(settings.AlertEmails))
	summary, err := job.RecomputeAllRankings(context.Background(), &services.RankingRecomputeInput{
		CurrentYear:   year,
		TriggerSource: trigger,
		RecordRun:     recordRun,
	})
	if err != nil {
		log.Fatalf("ranking recomputation failed: %v", err)
	}

	fmt.Println(summary.Message())
	fmt.Printf("Professors seen: %d, updated: %d, failed: %d (reference year %d)\n",
		summary.ProfessorsSeen,
		summary.UpdatedCount,
		summary.FailedCount,
		summary.CurrentYear,
	)
	for _, f := range summary.Failures {
		fmt.Printf("  %s %s: %s\n", f.Kind, f.ProfessorID, f.Message())
	}

	if summary.FailedCount > 0 {
		os.Exit(2)
	}
}
