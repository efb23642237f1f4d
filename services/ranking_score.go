package services

import (
	"math"

	"academic-directory-api/models"
)

const (
	basePublicationPoints = 10
	recencyDecayPerYear   = 0.1
	minRecencyFactor      = 0.5
	maxRecencyFactor      = 1.0
)

// PublicationPoints is the base value of one publication: 10 plus its citations.
// A missing or negative citation count counts as zero.
func PublicationPoints(citationCount *int) int {
	if citationCount == nil || *citationCount < 0 {
		return basePublicationPoints
	}
	return basePublicationPoints + *citationCount
}

// RecencyFactor weights a publication by age. It loses 0.1 per year and never
// leaves [0.5, 1.0]; a missing year is treated as currentYear.
func RecencyFactor(year *int, currentYear int) float64 {
	pubYear := currentYear
	if year != nil {
		pubYear = *year
	}
	yearDiff := currentYear - pubYear
	factor := 1 - float64(yearDiff)*recencyDecayPerYear
	return math.Min(maxRecencyFactor, math.Max(minRecencyFactor, factor))
}

func PublicationScore(pub models.PublicationScoreInput, currentYear int) float64 {
	return float64(PublicationPoints(pub.CitationCount)) * RecencyFactor(pub.Year, currentYear)
}

// ScoreProfessor sums the weighted publication scores and rounds once, half away
// from zero (math.Round). No publications scores 0.
func ScoreProfessor(pubs []models.PublicationScoreInput, currentYear int) int {
	var sum float64
	for _, pub := range pubs {
		sum += PublicationScore(pub, currentYear)
	}
	return int(math.Round(sum))
}
