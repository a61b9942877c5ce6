package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultCheckURL is the page checked when CHECK_URL is not set.
const DefaultCheckURL = "https://service.berlin.de/dienstleistung/324591/"

type Config struct {
	CheckURL       string        // target page
	RequestTimeout time.Duration // per-request timeout for the page fetch
	CheckInterval  time.Duration // cadence the external scheduler runs at; informational only
	RetryAttempts  int           // how many times to attempt the page fetch
	RetryBackoff   time.Duration // backoff between fetch attempts

	LogDir   string // logs directory
	LogLevel string // zap level name: debug|info|warn|error

	Markers []string // negative "no appointments" phrases; empty means built-in defaults

	NotifyTimeout time.Duration // per-channel send timeout

	// Channel credentials. A channel is enabled when its values are present.
	PushoverToken   string
	PushoverUser    string
	PushbulletToken string
	NtfyTopic       string
	NtfyServer      string // base URL, e.g. https://ntfy.sh
	Email           string // notification recipient and SMTP login
	EmailPassword   string // app password for the SMTP account
	SMTPAddr        string // host:port for mail submission
	WebhookURL      string
	GitHubToken     string
	GitHubRepo      string // owner/repo for issue creation
}

func FromEnv() Config {
	checkURL := os.Getenv("CHECK_URL")
	if checkURL == "" {
		checkURL = DefaultCheckURL
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if logLevel == "" {
		logLevel = "info"
	}

	requestTimeout := 30 * time.Second
	if v := os.Getenv("REQUEST_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			requestTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	checkInterval := 300 * time.Second
	if v := os.Getenv("CHECK_INTERVAL"); v != "" {
		if s, err := strconv.Atoi(v); err == nil && s > 0 {
			checkInterval = time.Duration(s) * time.Second
		}
	}

	retryAttempts := 2
	if v := os.Getenv("RETRY_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			retryAttempts = n
		}
	}

	retryBackoff := 300 * time.Millisecond
	if v := os.Getenv("RETRY_BACKOFF_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			retryBackoff = time.Duration(ms) * time.Millisecond
		}
	}

	notifyTimeout := 10 * time.Second
	if v := os.Getenv("NOTIFY_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			notifyTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	var markers []string
	if v := os.Getenv("NO_APPOINTMENT_MARKERS"); v != "" {
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				markers = append(markers, m)
			}
		}
	}

	ntfyServer := os.Getenv("NTFY_SERVER")
	if ntfyServer == "" {
		ntfyServer = "https://ntfy.sh"
	}

	smtpAddr := os.Getenv("SMTP_ADDR")
	if smtpAddr == "" {
		smtpAddr = "smtp.gmail.com:587"
	}

	return Config{
		CheckURL:       checkURL,
		RequestTimeout: requestTimeout,
		CheckInterval:  checkInterval,
		RetryAttempts:  retryAttempts,
		RetryBackoff:   retryBackoff,
		LogDir:         logDir,
		LogLevel:       logLevel,
		Markers:        markers,
		NotifyTimeout:  notifyTimeout,

		PushoverToken:   os.Getenv("PUSHOVER_TOKEN"),
		PushoverUser:    os.Getenv("PUSHOVER_USER"),
		PushbulletToken: os.Getenv("PUSHBULLET_TOKEN"),
		NtfyTopic:       os.Getenv("NTFY_TOPIC"),
		NtfyServer:      ntfyServer,
		Email:           os.Getenv("NOTIFICATION_EMAIL"),
		EmailPassword:   os.Getenv("EMAIL_PASSWORD"),
		SMTPAddr:        smtpAddr,
		WebhookURL:      os.Getenv("WEBHOOK_URL"),
		GitHubToken:     os.Getenv("GITHUB_TOKEN"),
		GitHubRepo:      os.Getenv("GITHUB_REPOSITORY"),
	}
}

// HasChannels reports whether at least one notification channel is configured.
func (c Config) HasChannels() bool {
	return (c.PushoverToken != "" && c.PushoverUser != "") ||
		c.PushbulletToken != "" ||
		c.NtfyTopic != "" ||
		(c.Email != "" && c.EmailPassword != "") ||
		c.WebhookURL != "" ||
		(c.GitHubToken != "" && c.GitHubRepo != "")
}
