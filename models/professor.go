package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Professor struct {
	ID                uuid.UUID `json:"id"                 gorm:"type:char(36);primaryKey"`
	FullName          string    `json:"full_name"          gorm:"type:varchar(255);not null"`
	Email             *string   `json:"email,omitempty"    gorm:"type:varchar(255)"`
	Title             *string   `json:"title,omitempty"    gorm:"type:varchar(128)"`
	Department        *string   `json:"department,omitempty" gorm:"type:varchar(255)"`
	University        *string   `json:"university,omitempty" gorm:"type:varchar(255)"`
	Bio               *string   `json:"bio,omitempty"      gorm:"type:text"`
	AvatarURL         *string   `json:"avatar_url,omitempty" gorm:"type:varchar(512)"`
	ResearchInterests *string   `json:"research_interests,omitempty" gorm:"type:text"`

	// Derived by the ranking job; nothing else writes it.
	RankingPoints int `json:"ranking_points" gorm:"column:ranking_points;not null;default:0;index"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Professor) TableName() string { return "professors" }

func (p *Professor) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
