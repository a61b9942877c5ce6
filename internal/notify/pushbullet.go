package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

const pushbulletEndpoint = "https://api.pushbullet.com/v2/pushes"

type Pushbullet struct {
	Token    string
	Endpoint string
	Client   *http.Client
}

func NewPushbullet(token string) *Pushbullet {
	if token == "" {
		return nil
	}
	return &Pushbullet{
		Token:    token,
		Endpoint: pushbulletEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *Pushbullet) Name() string { return "pushbullet" }

type pushbulletPayload struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (p *Pushbullet) Send(ctx context.Context, title, text string) error {
	if p == nil || p.Token == "" {
		return errors.New("pushbullet disabled")
	}
	body, _ := json.Marshal(pushbulletPayload{Type: "note", Title: title, Body: text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return errors.New("pushbullet non-2xx: " + resp.Status)
	}
	return nil
}
