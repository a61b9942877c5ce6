package monitor

import (
	"fmt"
	"strings"
	"time"

	"terminwatch/internal/availability"
)

// FormatMessage renders the notification body for an availability hit.
func FormatMessage(res availability.CheckResult, url string) string {
	var b strings.Builder

	if len(res.Details) > 0 {
		fmt.Fprintf(&b, "Found %d availability signal(s):\n\n", len(res.Details))
		for i, d := range res.Details {
			fmt.Fprintf(&b, "%d. %s\n", i+1, d)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("The appointment page no longer shows the \"fully booked\" notice.\n\n")
	}

	b.WriteString("Book your appointment quickly!\n")
	b.WriteString("Direct link: " + url + "\n\n")
	b.WriteString("Checked at: " + res.CheckedAt.Format(time.RFC3339))

	return b.String()
}
