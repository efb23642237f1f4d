package config

import (
	"os"
	"strconv"
	"strings"
)

const defaultAdminRoleID = 3

// RankingSettings controls the ranking recomputation job outside of its scoring rules.
type RankingSettings struct {
	RecordRuns    bool
	TriggerSource string
	AlertEmails   []string
	AdminRoleID   int
}

func LoadRankingSettings() RankingSettings {
	settings := RankingSettings{
		RecordRuns:    parseBool(os.Getenv("RANKING_RECORD_RUNS")),
		TriggerSource: strings.TrimSpace(os.Getenv("RANKING_TRIGGER")),
		AlertEmails:   SplitList(os.Getenv("RANKING_ALERT_EMAILS")),
		AdminRoleID:   defaultAdminRoleID,
	}
	if settings.TriggerSource == "" {
		settings.TriggerSource = "http"
	}
	if id, err := strconv.Atoi(strings.TrimSpace(os.Getenv("RANKING_ADMIN_ROLE_ID"))); err == nil && id > 0 {
		settings.AdminRoleID = id
	}
	return settings
}

// SplitList splits a comma separated value, dropping blanks.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
