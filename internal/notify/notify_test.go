package notify

import (
	"testing"

	"terminwatch/internal/config"
)

func TestFromConfig_OnlyConfiguredChannels(t *testing.T) {
	cfg := config.Config{
		NtfyTopic:  "berlin-termine",
		NtfyServer: "https://ntfy.sh",
		WebhookURL: "https://example.com/hook",
		// pushover token without user key: incomplete, must be skipped
		PushoverToken: "tok",
	}
	channels := FromConfig(cfg)
	if len(channels) != 2 {
		t.Fatalf("want 2 channels, got %d", len(channels))
	}
	names := map[string]bool{}
	for _, c := range channels {
		names[c.Name()] = true
	}
	if !names["ntfy"] || !names["webhook"] {
		t.Fatalf("unexpected channel set: %v", names)
	}
}

func TestFromConfig_EmptyConfigYieldsNoChannels(t *testing.T) {
	if channels := FromConfig(config.Config{}); len(channels) != 0 {
		t.Fatalf("want no channels, got %d", len(channels))
	}
}
