package services

import (
	"fmt"

	"github.com/google/uuid"
)

type RankingErrorKind string

const (
	FetchProfessorsFailed   RankingErrorKind = "fetch_professors_failed"
	FetchPublicationsFailed RankingErrorKind = "fetch_publications_failed"
	UpdateFailed            RankingErrorKind = "update_failed"
)

// RankingError tags a ranking job failure with the step that failed.
// Only FetchProfessorsFailed aborts a run.
type RankingError struct {
	Kind        RankingErrorKind
	ProfessorID uuid.UUID
	Err         error
}

func (e *RankingError) Error() string {
	if e == nil {
		return ""
	}
	if e.ProfessorID == uuid.Nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s for professor %s: %v", e.Kind, e.ProfessorID, e.Err)
}

func (e *RankingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *RankingError) Fatal() bool {
	return e != nil && e.Kind == FetchProfessorsFailed
}

// Message is the underlying error text, without the kind prefix.
func (e *RankingError) Message() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
