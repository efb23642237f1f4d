package services

import (
	"errors"

	"academic-directory-api/config"
	"academic-directory-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProfessorNotFound = errors.New("professor not found")

type ProfessorService struct {
	db *gorm.DB
}

func NewProfessorService(db *gorm.DB) *ProfessorService {
	if db == nil {
		db = config.DB
	}
	return &ProfessorService{db: db}
}

// ListByRanking returns the directory page ordered by ranking_points, highest first.
func (s *ProfessorService) ListByRanking(limit, offset int) ([]models.Professor, Page, error) {
	page := newPage(limit, offset)

	if err := s.db.Model(&models.Professor{}).Count(&page.Total).Error; err != nil {
		return nil, Page{}, err
	}

	var profs []models.Professor
	if err := s.db.Model(&models.Professor{}).
		Order("ranking_points DESC, full_name ASC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&profs).Error; err != nil {
		return nil, Page{}, err
	}
	return profs, page, nil
}

func (s *ProfessorService) Get(id uuid.UUID) (*models.Professor, error) {
	var p models.Professor
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessorNotFound
		}
		return nil, err
	}
	return &p, nil
}
