// Package sentiment calls the external classifier that summarizes citizen
// feedback comments. The classifier is a hard dependency of feedback
// submission: when it cannot be reached the submission fails.
package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Classifier summarizes a feedback comment into a short sentiment label.
type Classifier interface {
	Classify(ctx context.Context, comment string) (string, error)
}

// Client talks to the classifier service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type classifyRequest struct {
	Comment string `json:"comment"`
}

type classifyResponse struct {
	Summary string `json:"summary"`
}

// Classify posts the comment to the classifier and returns its summary.
func (c *Client) Classify(ctx context.Context, comment string) (string, error) {
	body, err := json.Marshal(classifyRequest{Comment: comment})
	if err != nil {
		return "", fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("classifier returned %d: %s", resp.StatusCode, snippet)
	}

	var out classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode classifier response: %w", err)
	}
	if out.Summary == "" {
		return "", fmt.Errorf("classifier returned empty summary")
	}
	return out.Summary, nil
}
