package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

const webhookUsername = "Berlin Appointment Monitor"

// Webhook posts to a generic JSON sink. Discord and Slack URLs get their
// native payload shapes; anything else receives {title, message, timestamp}.
type Webhook struct {
	URL    string
	Client *http.Client
}

func NewWebhook(url string) *Webhook {
	if url == "" {
		return nil
	}
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *Webhook) Name() string { return "webhook" }

func (w *Webhook) Send(ctx context.Context, title, text string) error {
	if w == nil || w.URL == "" {
		return errors.New("webhook disabled")
	}

	var payload any
	switch {
	case strings.Contains(strings.ToLower(w.URL), "discord"):
		payload = map[string]string{
			"content":  "**" + title + "**\n\n" + text,
			"username": webhookUsername,
		}
	case strings.Contains(strings.ToLower(w.URL), "slack"):
		payload = map[string]string{
			"text":     "*" + title + "*\n\n" + text,
			"username": webhookUsername,
		}
	default:
		payload = map[string]string{
			"title":     title,
			"message":   text,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return errors.New("webhook non-2xx: " + resp.Status)
	}
	return nil
}
