package service

import (
	"strings"
	"time"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
)

const (
	// TimeLayout renders UTC instants with millisecond precision and a Z suffix.
	TimeLayout = "2006-01-02T15:04:05.000Z07:00"

	AlertHeader   = "NOCTUA PANIC ALERT"
	Placeholder   = "N/A"
	DefaultSource = "noctua-panic-webapp"
)

// FormatAlert renders the SMS body. Line count and order never vary; absent
// fields become placeholders and now stands in for a missing trigger time.
func FormatAlert(req domain.AlertRequest, now time.Time) string {
	var b strings.Builder
	b.WriteString(AlertHeader)
	b.WriteString("\nSite: ")
	b.WriteString(orDefault(req.SiteID, Placeholder))
	b.WriteString("\nGuard: ")
	b.WriteString(orDefault(req.GuardID, Placeholder))
	b.WriteString("\nSource: ")
	b.WriteString(orDefault(req.Source, DefaultSource))
	b.WriteString("\nTime: ")
	b.WriteString(orDefault(req.TriggeredAt, now.UTC().Format(TimeLayout)))
	return b.String()
}

// FormatIncidentPrompt renders the input handed to the summarizer.
func FormatIncidentPrompt(req domain.IncidentLogRequest, now time.Time) string {
	var b strings.Builder
	b.WriteString("Guard ID: ")
	b.WriteString(orDefault(req.GuardID, Placeholder))
	b.WriteString("\nSite ID: ")
	b.WriteString(orDefault(req.SiteID, Placeholder))
	b.WriteString("\nTime: ")
	b.WriteString(orDefault(req.Timestamp, now.UTC().Format(TimeLayout)))
	b.WriteString("\n\nIncident description:\n")
	b.WriteString(strings.TrimSpace(req.Message))
	return b.String()
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
