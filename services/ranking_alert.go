package services

import (
	"fmt"
	"html"
	"time"

	"academic-directory-api/config"

	"github.com/google/uuid"
)

// RankingAlerter is told about runs that failed before any professor was scored.
type RankingAlerter interface {
	NotifyFailure(runID uuid.UUID, err error) error
}

type MailRankingAlerter struct {
	recipients []string
	send       func(to []string, subject, body string) error
}

func NewMailRankingAlerter(recipients []string) *MailRankingAlerter {
	return &MailRankingAlerter{recipients: recipients, send: config.SendMail}
}

func (a *MailRankingAlerter) NotifyFailure(runID uuid.UUID, err error) error {
	if a == nil || len(a.recipients) == 0 || err == nil {
		return nil
	}
	subject := "[Academic Directory] Ranking recomputation failed"
	body := fmt.Sprintf(
		"<p>The ranking recomputation run <code>%s</code> failed at %s.</p><p>Error: %s</p>",
		runID,
		time.Now().Format(time.RFC3339),
		html.EscapeString(err.Error()),
	)
	return a.send(a.recipients, subject, body)
}
