package notify

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const pushoverEndpoint = "https://api.pushover.net/1/messages.json"

type Pushover struct {
	Token    string
	User     string
	Endpoint string
	Client   *http.Client
}

func NewPushover(token, user string) *Pushover {
	if token == "" || user == "" {
		return nil
	}
	return &Pushover{
		Token:    token,
		User:     user,
		Endpoint: pushoverEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *Pushover) Name() string { return "pushover" }

func (p *Pushover) Send(ctx context.Context, title, text string) error {
	if p == nil || p.Token == "" || p.User == "" {
		return errors.New("pushover disabled")
	}
	form := url.Values{
		"token":    {p.Token},
		"user":     {p.User},
		"title":    {title},
		"message":  {text},
		"priority": {"1"},
		"sound":    {"bugle"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return errors.New("pushover non-2xx: " + resp.Status)
	}
	return nil
}
