package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const githubAPIBase = "https://api.github.com"

// GitHubIssue files an issue in the hosting repository. The token is the
// automatic one the CI environment provides, so this channel works only
// inside a workflow run (or with a PAT locally).
type GitHubIssue struct {
	Token   string
	Repo    string // owner/repo
	BaseURL string
	Client  *http.Client
}

func NewGitHubIssue(token, repo string) *GitHubIssue {
	if token == "" || repo == "" {
		return nil
	}
	return &GitHubIssue{
		Token:   token,
		Repo:    repo,
		BaseURL: githubAPIBase,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *GitHubIssue) Name() string { return "github" }

type issuePayload struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

func (g *GitHubIssue) Send(ctx context.Context, title, text string) error {
	if g == nil || g.Token == "" || g.Repo == "" {
		return errors.New("github disabled")
	}

	body, _ := json.Marshal(issuePayload{
		Title:  title,
		Body:   text + "\n\n---\n*Created automatically at " + time.Now().UTC().Format(time.RFC3339) + "*",
		Labels: []string{"appointment-alert", "automated"},
	})
	url := g.BaseURL + "/repos/" + g.Repo + "/issues"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "token "+g.Token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("github issue create: %s: %s", resp.Status, bytes.TrimSpace(detail))
	}
	return nil
}
