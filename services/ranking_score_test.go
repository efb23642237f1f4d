package services

import (
	"testing"

	"academic-directory-api/models"

	"github.com/stretchr/testify/assert"
)

const refYear = 2025

func intPtr(v int) *int { return &v }

func pub(citations, year *int) models.PublicationScoreInput {
	return models.PublicationScoreInput{CitationCount: citations, Year: year}
}

func TestPublicationPoints(t *testing.T) {
	assert.Equal(t, 10, PublicationPoints(nil))
	assert.Equal(t, 10, PublicationPoints(intPtr(0)))
	assert.Equal(t, 15, PublicationPoints(intPtr(5)))
	assert.Equal(t, 1010, PublicationPoints(intPtr(1000)))
}

func TestRecencyFactorStaysWithinBounds(t *testing.T) {
	for age := 0; age <= 40; age++ {
		f := RecencyFactor(intPtr(refYear-age), refYear)
		assert.GreaterOrEqual(t, f, 0.5, "age %d", age)
		assert.LessOrEqual(t, f, 1.0, "age %d", age)
	}
}

func TestRecencyFactor(t *testing.T) {
	cases := []struct {
		name string
		year *int
		want float64
	}{
		{"current year", intPtr(refYear), 1.0},
		{"missing year", nil, 1.0},
		{"one year old", intPtr(refYear - 1), 0.9},
		{"four years old", intPtr(refYear - 4), 0.6},
		{"five years old hits floor", intPtr(refYear - 5), 0.5},
		{"ten years old", intPtr(refYear - 10), 0.5},
		{"future dated", intPtr(refYear + 3), 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, RecencyFactor(tc.year, refYear), 1e-9)
		})
	}
}

func TestScoreProfessor(t *testing.T) {
	cases := []struct {
		name string
		pubs []models.PublicationScoreInput
		want int
	}{
		{"no publications", nil, 0},
		{"single current publication", []models.PublicationScoreInput{pub(intPtr(5), intPtr(refYear))}, 15},
		{"decade old publication", []models.PublicationScoreInput{pub(intPtr(0), intPtr(refYear - 10))}, 5},
		{
			"missing year counts as current",
			[]models.PublicationScoreInput{
				pub(intPtr(20), intPtr(refYear)),
				pub(intPtr(0), nil),
			},
			40,
		},
		{"missing citations count as zero", []models.PublicationScoreInput{pub(nil, intPtr(refYear - 2))}, 8},
		{
			"rounds the sum once",
			[]models.PublicationScoreInput{
				pub(intPtr(1), intPtr(refYear - 3)), // 11 * 0.7 = 7.7
				pub(intPtr(1), intPtr(refYear - 3)), // 7.7
			},
			15,
		},
		{"half rounds away from zero", []models.PublicationScoreInput{pub(intPtr(5), intPtr(refYear - 10))}, 8}, // 7.5
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ScoreProfessor(tc.pubs, refYear))
		})
	}
}

func BenchmarkScoreProfessor(b *testing.B) {
	pubs := make([]models.PublicationScoreInput, 0, 200)
	for i := 0; i < 200; i++ {
		pubs = append(pubs, pub(intPtr(i), intPtr(refYear-i%12)))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScoreProfessor(pubs, refYear)
	}
}
