// Package notify delivers availability alerts through the configured
// channels. Every channel constructor returns nil when its credentials are
// absent, so wiring stays declarative in FromConfig.
package notify

import (
	"context"

	"terminwatch/internal/config"
)

// Notifier is one delivery channel for an availability alert.
type Notifier interface {
	Name() string
	Send(ctx context.Context, title, text string) error
}

// Outcome records one channel's delivery attempt.
type Outcome struct {
	Channel string
	OK      bool
	Err     error
}

// FromConfig assembles the channels whose credentials are present.
func FromConfig(cfg config.Config) []Notifier {
	var channels []Notifier
	if n := NewPushover(cfg.PushoverToken, cfg.PushoverUser); n != nil {
		channels = append(channels, n)
	}
	if n := NewPushbullet(cfg.PushbulletToken); n != nil {
		channels = append(channels, n)
	}
	if n := NewNtfy(cfg.NtfyServer, cfg.NtfyTopic); n != nil {
		channels = append(channels, n)
	}
	if n := NewEmail(cfg.Email, cfg.EmailPassword, cfg.SMTPAddr); n != nil {
		channels = append(channels, n)
	}
	if n := NewWebhook(cfg.WebhookURL); n != nil {
		channels = append(channels, n)
	}
	if n := NewGitHubIssue(cfg.GitHubToken, cfg.GitHubRepo); n != nil {
		channels = append(channels, n)
	}
	return channels
}
