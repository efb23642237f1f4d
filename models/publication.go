package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Publication struct {
	ID            uuid.UUID `json:"id"                 gorm:"type:char(36);primaryKey"`
	ProfessorID   uuid.UUID `json:"professor_id"       gorm:"type:char(36);not null;index:idx_professor_year"`
	Title         string    `json:"title"              gorm:"type:varchar(500);not null"`
	Authors       *string   `json:"authors,omitempty"  gorm:"type:text"`
	Journal       *string   `json:"journal,omitempty"  gorm:"type:varchar(255)"`
	Publisher     *string   `json:"publisher,omitempty" gorm:"type:varchar(255)"`
	Year          *int      `json:"year,omitempty"     gorm:"index:idx_professor_year"`
	CitationCount *int      `json:"citation_count,omitempty" gorm:"column:citation_count"`
	DOI           *string   `json:"doi,omitempty"      gorm:"type:varchar(255)"`
	URL           *string   `json:"url,omitempty"      gorm:"type:varchar(512)"`

	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"column:deleted_at;index"`
}

func (Publication) TableName() string { return "publications" }

func (p *Publication) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PublicationScoreInput is the slice of a publication the ranking job reads.
type PublicationScoreInput struct {
	CitationCount *int `gorm:"column:citation_count"`
	Year          *int `gorm:"column:year"`
}
