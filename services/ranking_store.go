package services

import (
	"context"

	"academic-directory-api/config"
	"academic-directory-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RankingStore is the data the ranking job reads and the one field it writes.
// Each call may fail independently.
type RankingStore interface {
	ListProfessorIDs(ctx context.Context) ([]uuid.UUID, error)
	ListPublicationScores(ctx context.Context, professorID uuid.UUID) ([]models.PublicationScoreInput, error)
	UpdateRankingPoints(ctx context.Context, professorID uuid.UUID, points int) error
}

type GormRankingStore struct {
	db *gorm.DB
}

func NewGormRankingStore(db *gorm.DB) *GormRankingStore {
	if db == nil {
		db = config.DB
	}
	if db != nil {
		// every write is a single UPDATE, no transaction needed
		db = db.Session(&gorm.Session{SkipDefaultTransaction: true})
	}
	return &GormRankingStore{db: db}
}

func (s *GormRankingStore) ListProfessorIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := s.db.WithContext(ctx).
		Model(&models.Professor{}).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *GormRankingStore) ListPublicationScores(ctx context.Context, professorID uuid.UUID) ([]models.PublicationScoreInput, error) {
	var rows []models.PublicationScoreInput
	if err := s.db.WithContext(ctx).
		Model(&models.Publication{}).
		Select("citation_count", "year").
		Where("professor_id = ?", professorID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateRankingPoints writes ranking_points only; updated_at is left alone so
// profile edits stay distinguishable from recomputations.
func (s *GormRankingStore) UpdateRankingPoints(ctx context.Context, professorID uuid.UUID, points int) error {
	return s.db.WithContext(ctx).
		Model(&models.Professor{}).
		Where("id = ?", professorID).
		UpdateColumn("ranking_points", points).Error
}
