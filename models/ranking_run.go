package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	RankingRunStatusRunning = "running"
	RankingRunStatusSuccess = "success"
	RankingRunStatusFailed  = "failed"
)

type RankingRun struct {
	ID uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`

	TriggerSource string     `json:"trigger_source" gorm:"type:varchar(64);not null"`
	Status        string     `json:"status" gorm:"type:enum('running','success','failed');not null;default:'running'"`
	ErrorMessage  *string    `json:"error_message" gorm:"type:text"`
	StartedAt     time.Time  `json:"started_at" gorm:"column:started_at;autoCreateTime"`
	FinishedAt    *time.Time `json:"finished_at" gorm:"column:finished_at"`

	CurrentYear    int            `json:"current_year" gorm:"column:current_year;not null;default:0"`
	ProfessorsSeen uint           `json:"professors_seen" gorm:"column:professors_seen;not null;default:0"`
	UpdatedCount   uint           `json:"updated_count" gorm:"column:updated_count;not null;default:0"`
	FailedCount    uint           `json:"failed_count" gorm:"column:failed_count;not null;default:0"`
	Failures       datatypes.JSON `json:"failures" gorm:"column:failures;type:json"`
}

func (RankingRun) TableName() string { return "ranking_runs" }
