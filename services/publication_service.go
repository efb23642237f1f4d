package services

import (
	"academic-directory-api/config"
	"academic-directory-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PublicationService struct {
	db *gorm.DB
}

func NewPublicationService(db *gorm.DB) *PublicationService {
	if db == nil {
		db = config.DB
	}
	return &PublicationService{db: db}
}

func (s *PublicationService) ListByProfessor(professorID uuid.UUID, year *int, limit, offset int) ([]models.Publication, Page, error) {
	page := newPage(limit, offset)

	q := s.db.Model(&models.Publication{}).
		Where("professor_id = ?", professorID)
	if year != nil {
		q = q.Where("year = ?", *year)
	}

	if err := q.Count(&page.Total).Error; err != nil {
		return nil, Page{}, err
	}

	var pubs []models.Publication
	if err := q.
		Order("year DESC, citation_count DESC, id ASC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&pubs).Error; err != nil {
		return nil, Page{}, err
	}
	return pubs, page, nil
}

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Page is the paging window actually applied to a listing.
type Page struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func newPage(limit, offset int) Page {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}
