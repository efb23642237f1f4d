package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"academic-directory-api/config"
	"academic-directory-api/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrRankingRunNotFound = errors.New("ranking run not found")
)

const maxRunErrorMessage = 1000

// RankingRunRecorder persists one row per job run.
type RankingRunRecorder interface {
	Start(runID uuid.UUID, trigger string, currentYear int) error
	MarkSuccess(runID uuid.UUID, summary *RankingSummary) error
	MarkFailure(runID uuid.UUID, summary *RankingSummary, err error) error
}

type RankingRunService struct {
	db *gorm.DB
}

func NewRankingRunService(db *gorm.DB) *RankingRunService {
	if db == nil {
		db = config.DB
	}
	return &RankingRunService{db: db}
}

func (s *RankingRunService) Start(runID uuid.UUID, trigger string, currentYear int) error {
	if trigger == "" {
		trigger = "unknown"
	}
	run := &models.RankingRun{
		ID:            runID,
		TriggerSource: trigger,
		Status:        models.RankingRunStatusRunning,
		CurrentYear:   currentYear,
	}
	return s.db.Create(run).Error
}

func (s *RankingRunService) MarkSuccess(runID uuid.UUID, summary *RankingSummary) error {
	return s.finish(runID, models.RankingRunStatusSuccess, summary, nil)
}

func (s *RankingRunService) MarkFailure(runID uuid.UUID, summary *RankingSummary, err error) error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return s.finish(runID, models.RankingRunStatusFailed, summary, &msg)
}

func (s *RankingRunService) Get(runID uuid.UUID) (*models.RankingRun, error) {
	var run models.RankingRun
	if err := s.db.First(&run, "id = ?", runID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRankingRunNotFound
		}
		return nil, err
	}
	return &run, nil
}

func (s *RankingRunService) finish(runID uuid.UUID, status string, summary *RankingSummary, errMsg *string) error {
	updates := map[string]interface{}{
		"status":      status,
		"finished_at": time.Now(),
	}
	if summary != nil {
		updates["professors_seen"] = summary.ProfessorsSeen
		updates["updated_count"] = summary.UpdatedCount
		updates["failed_count"] = summary.FailedCount
		if failures := encodeRunFailures(summary.Failures); failures != nil {
			updates["failures"] = failures
		}
	}
	if errMsg != nil {
		updates["error_message"] = truncateRunError(*errMsg)
	}
	res := s.db.Model(&models.RankingRun{}).Where("id = ?", runID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRankingRunNotFound
	}
	return nil
}

type runFailure struct {
	ProfessorID string `json:"professor_id"`
	Kind        string `json:"kind"`
	Error       string `json:"error"`
}

func encodeRunFailures(failures []*RankingError) datatypes.JSON {
	if len(failures) == 0 {
		return nil
	}
	rows := make([]runFailure, 0, len(failures))
	for _, f := range failures {
		rows = append(rows, runFailure{
			ProfessorID: f.ProfessorID.String(),
			Kind:        string(f.Kind),
			Error:       f.Message(),
		})
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func truncateRunError(msg string) string {
	if len(msg) > maxRunErrorMessage {
		return fmt.Sprintf("%s...", msg[:maxRunErrorMessage-3])
	}
	return msg
}
