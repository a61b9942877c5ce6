package notify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

type Ntfy struct {
	Endpoint string // full publish URL: <server>/<topic>
	Client   *http.Client
}

func NewNtfy(server, topic string) *Ntfy {
	if topic == "" {
		return nil
	}
	if server == "" {
		server = "https://ntfy.sh"
	}
	return &Ntfy{
		Endpoint: strings.TrimRight(server, "/") + "/" + topic,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *Ntfy) Name() string { return "ntfy" }

// Send publishes the message body as plain text; title, priority, and tags
// travel in headers per the ntfy publish API.
func (n *Ntfy) Send(ctx context.Context, title, text string) error {
	if n == nil || n.Endpoint == "" {
		return errors.New("ntfy disabled")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.Endpoint, strings.NewReader(text))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Title", title)
	req.Header.Set("Priority", "high")
	req.Header.Set("Tags", "appointment,berlin")

	resp, err := n.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return errors.New("ntfy non-2xx: " + resp.Status + " " + strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
