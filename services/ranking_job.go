package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"academic-directory-api/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RankingSummary struct {
	RunID          uuid.UUID `json:"run_id"`
	CurrentYear    int       `json:"current_year"`
	ProfessorsSeen int       `json:"professors_seen"`
	UpdatedCount   int       `json:"updated_count"`
	FailedCount    int       `json:"failed_count"`

	// Recoverable per-professor failures. Never part of the HTTP response.
	Failures []*RankingError `json:"-"`
}

func (s *RankingSummary) Message() string {
	if s == nil {
		return ""
	}
	if s.UpdatedCount == 1 {
		return "Updated rankings for 1 professor"
	}
	return fmt.Sprintf("Updated rankings for %d professors", s.UpdatedCount)
}

type RankingRecomputeInput struct {
	// CurrentYear overrides the reference year; 0 uses the clock.
	CurrentYear   int
	TriggerSource string
	RecordRun     bool
}

type RankingJobService struct {
	store   RankingStore
	runs    RankingRunRecorder
	metrics *RankingMetrics
	alerter RankingAlerter
	now     func() time.Time
}

func NewRankingJobService(db *gorm.DB) *RankingJobService {
	if db == nil {
		db = config.DB
	}
	svc := NewRankingJobServiceWithStore(NewGormRankingStore(db))
	svc.runs = NewRankingRunService(db)
	return svc
}

func NewRankingJobServiceWithStore(store RankingStore) *RankingJobService {
	return &RankingJobService{store: store, now: time.Now}
}

func (s *RankingJobService) WithRunRecorder(r RankingRunRecorder) *RankingJobService {
	s.runs = r
	return s
}

func (s *RankingJobService) WithMetrics(m *RankingMetrics) *RankingJobService {
	s.metrics = m
	return s
}

func (s *RankingJobService) WithAlerter(a RankingAlerter) *RankingJobService {
	s.alerter = a
	return s
}

func (s *RankingJobService) WithClock(now func() time.Time) *RankingJobService {
	if now != nil {
		s.now = now
	}
	return s
}

// RecomputeAllRankings scores every professor against one reference year and writes
// ranking_points. Professors are processed one at a time; a failure to read a
// professor's publications or to write the score skips that professor only.
// The only returned error is a *RankingError of kind FetchProfessorsFailed.
func (s *RankingJobService) RecomputeAllRankings(ctx context.Context, input *RankingRecomputeInput) (*RankingSummary, error) {
	if s.store == nil {
		return nil, errors.New("ranking store is nil")
	}
	if input == nil {
		input = &RankingRecomputeInput{}
	}
	// run to completion even if the caller goes away
	ctx = persistentContext(ctx)

	started := s.now()
	currentYear := input.CurrentYear
	if currentYear <= 0 {
		currentYear = started.Year()
	}
	summary := &RankingSummary{RunID: uuid.New(), CurrentYear: currentYear}

	recording := false
	if input.RecordRun && s.runs != nil {
		if err := s.runs.Start(summary.RunID, input.TriggerSource, currentYear); err != nil {
			log.Printf("failed to record ranking run %s start: %v", summary.RunID, err)
		} else {
			recording = true
		}
	}

	var finalErr error
	defer func() {
		s.finishRun(summary, started, recording, finalErr)
	}()

	ids, err := s.store.ListProfessorIDs(ctx)
	if err != nil {
		finalErr = &RankingError{Kind: FetchProfessorsFailed, Err: err}
		log.Printf("ranking run %s aborted: %v", summary.RunID, finalErr)
		return nil, finalErr
	}
	summary.ProfessorsSeen = len(ids)

	for _, id := range ids {
		if rerr := s.recomputeProfessor(ctx, id, currentYear); rerr != nil {
			summary.FailedCount++
			summary.Failures = append(summary.Failures, rerr)
			s.metrics.incProfessorError(rerr.Kind)
			log.Printf("ranking run %s: %v", summary.RunID, rerr)
			continue
		}
		summary.UpdatedCount++
	}

	log.Printf("ranking run %s finished: %d updated, %d failed, reference year %d",
		summary.RunID, summary.UpdatedCount, summary.FailedCount, currentYear)
	return summary, nil
}

func (s *RankingJobService) recomputeProfessor(ctx context.Context, professorID uuid.UUID, currentYear int) *RankingError {
	pubs, err := s.store.ListPublicationScores(ctx, professorID)
	if err != nil {
		return &RankingError{Kind: FetchPublicationsFailed, ProfessorID: professorID, Err: err}
	}
	points := ScoreProfessor(pubs, currentYear)
	if err := s.store.UpdateRankingPoints(ctx, professorID, points); err != nil {
		return &RankingError{Kind: UpdateFailed, ProfessorID: professorID, Err: err}
	}
	return nil
}

func (s *RankingJobService) finishRun(summary *RankingSummary, started time.Time, recording bool, runErr error) {
	status := RankingRunStatusSuccess
	if runErr != nil {
		status = RankingRunStatusFailure
	}
	s.metrics.observeRun(status, s.now().Sub(started), summary.UpdatedCount)

	if recording {
		var err error
		if runErr != nil {
			err = s.runs.MarkFailure(summary.RunID, summary, runErr)
		} else {
			err = s.runs.MarkSuccess(summary.RunID, summary)
		}
		if err != nil {
			log.Printf("failed to record ranking run %s result: %v", summary.RunID, err)
		}
	}

	if runErr != nil && s.alerter != nil {
		if err := s.alerter.NotifyFailure(summary.RunID, runErr); err != nil {
			log.Printf("failed to send ranking failure alert for run %s: %v", summary.RunID, err)
		}
	}
}

func persistentContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return context.WithoutCancel(ctx)
}
