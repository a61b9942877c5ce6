package monitor

import (
	"strings"
	"testing"
	"time"

	"terminwatch/internal/availability"
)

func TestFormatMessage_ListsDetails(t *testing.T) {
	res := availability.CheckResult{
		Available: true,
		Details:   []string{"time slot: 09:00", "booking action: Termin buchen"},
		CheckedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	msg := FormatMessage(res, "https://service.berlin.de/dienstleistung/324591/")

	if !strings.Contains(msg, "Found 2 availability signal(s):") {
		t.Fatalf("missing count line:\n%s", msg)
	}
	if !strings.Contains(msg, "1. time slot: 09:00") || !strings.Contains(msg, "2. booking action: Termin buchen") {
		t.Fatalf("details not listed:\n%s", msg)
	}
	if !strings.Contains(msg, "Direct link: https://service.berlin.de/dienstleistung/324591/") {
		t.Fatalf("missing direct link:\n%s", msg)
	}
	if !strings.Contains(msg, "Checked at: 2025-03-14T09:30:00Z") {
		t.Fatalf("missing timestamp:\n%s", msg)
	}
}

func TestFormatMessage_NoDetails(t *testing.T) {
	res := availability.CheckResult{Available: true, CheckedAt: time.Now().UTC()}
	msg := FormatMessage(res, "https://example.com")
	if !strings.Contains(msg, "no longer shows") {
		t.Fatalf("expected fallback wording:\n%s", msg)
	}
}
