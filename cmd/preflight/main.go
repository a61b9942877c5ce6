// cmd/preflight/main.go
package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Checks the environment before wiring the monitor into a scheduler, so a
// misconfigured deployment fails loudly instead of silently never notifying.
func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	if raw := strings.TrimSpace(os.Getenv("CHECK_URL")); raw != "" {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			fail("CHECK_URL is not a valid absolute URL: " + raw)
		}
		ok("CHECK_URL=" + raw)
	} else {
		warn("CHECK_URL empty — the compiled-in Berlin service page will be checked.")
	}

	for _, name := range []string{"REQUEST_TIMEOUT_MS", "CHECK_INTERVAL", "RETRY_ATTEMPTS", "RETRY_BACKOFF_MS", "NOTIFY_TIMEOUT_MS"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			if _, err := strconv.Atoi(v); err != nil {
				fail(name + " is not numeric: " + v)
			}
		}
	}

	// Partial credential pairs configure nothing; call them out.
	pushoverToken := os.Getenv("PUSHOVER_TOKEN")
	pushoverUser := os.Getenv("PUSHOVER_USER")
	if (pushoverToken == "") != (pushoverUser == "") {
		warn("PUSHOVER_TOKEN and PUSHOVER_USER must both be set; pushover will be skipped.")
	}
	email := os.Getenv("NOTIFICATION_EMAIL")
	emailPass := os.Getenv("EMAIL_PASSWORD")
	if (email == "") != (emailPass == "") {
		warn("NOTIFICATION_EMAIL and EMAIL_PASSWORD must both be set; email will be skipped.")
	}
	ghToken := os.Getenv("GITHUB_TOKEN")
	ghRepo := os.Getenv("GITHUB_REPOSITORY")
	if ghToken != "" && ghRepo == "" {
		warn("GITHUB_TOKEN set without GITHUB_REPOSITORY; issue creation will be skipped.")
	}

	configured := 0
	for name, set := range map[string]bool{
		"pushover":   pushoverToken != "" && pushoverUser != "",
		"pushbullet": os.Getenv("PUSHBULLET_TOKEN") != "",
		"ntfy":       os.Getenv("NTFY_TOPIC") != "",
		"email":      email != "" && emailPass != "",
		"webhook":    os.Getenv("WEBHOOK_URL") != "",
		"github":     ghToken != "" && ghRepo != "",
	} {
		if set {
			configured++
			ok("channel configured: " + name)
		}
	}
	if configured == 0 {
		warn("no notification channels configured — the monitor will check but tell no one.")
	}

	ok("preflight passed")
}
