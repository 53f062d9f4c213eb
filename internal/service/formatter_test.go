package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
	"github.com/Noctua76/noctua-panic-backend/internal/service"
)

func TestFormatAlert_AllFields(t *testing.T) {
	t.Parallel()

	req := domain.AlertRequest{SiteID: "S1", GuardID: "G1", TriggeredAt: "2024-01-01T00:00:00Z", Source: "app"}

	got := service.FormatAlert(req, time.Now())
	want := "NOCTUA PANIC ALERT\nSite: S1\nGuard: G1\nSource: app\nTime: 2024-01-01T00:00:00Z"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}

	if again := service.FormatAlert(req, time.Now().Add(time.Hour)); again != got {
		t.Fatalf("not deterministic: %q vs %q", again, got)
	}
}

func TestFormatAlert_Placeholders(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 9, 21, 5, 7, 123_000_000, time.FixedZone("EET", 2*3600))

	got := service.FormatAlert(domain.AlertRequest{SiteID: "  "}, now)
	want := "NOCTUA PANIC ALERT\nSite: N/A\nGuard: N/A\nSource: noctua-panic-webapp\nTime: 2024-03-09T19:05:07.123Z"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestFormatAlert_StableLineCount(t *testing.T) {
	t.Parallel()

	reqs := []domain.AlertRequest{
		{},
		{SiteID: "S"},
		{GuardID: "G", Source: "s"},
		{SiteID: "S", GuardID: "G", TriggeredAt: "t", Source: "s"},
	}
	for _, r := range reqs {
		lines := strings.Split(service.FormatAlert(r, time.Unix(0, 0)), "\n")
		if len(lines) != 5 {
			t.Fatalf("req %+v: got %d lines", r, len(lines))
		}
		for i, prefix := range []string{"NOCTUA PANIC ALERT", "Site: ", "Guard: ", "Source: ", "Time: "} {
			if !strings.HasPrefix(lines[i], prefix) {
				t.Fatalf("req %+v: line %d %q lacks %q", r, i, lines[i], prefix)
			}
		}
	}
}

func TestFormatIncidentPrompt(t *testing.T) {
	t.Parallel()

	got := service.FormatIncidentPrompt(domain.IncidentLogRequest{
		GuardID: "G7",
		Message: "  Door forced at north gate.\n",
	}, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	want := "Guard ID: G7\nSite ID: N/A\nTime: 2024-01-01T00:00:00.000Z\n\nIncident description:\nDoor forced at north gate."
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}
