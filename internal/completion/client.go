// internal/completion/client.go
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
	"unicode/utf8"
)

// DefaultModelURL is the Hugging Face Inference API endpoint used when none is configured.
const DefaultModelURL = "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.2"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

type inferenceRequest struct {
	Inputs     string `json:"inputs"`
	Parameters Params `json:"parameters"`
}

type inferenceOutput struct {
	GeneratedText string `json:"generated_text"`
}

// StatusError reports a non-200 response from the inference service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("inference api status %d: %s", e.StatusCode, truncate(e.Body, 200))
}

// Client calls a Hugging Face style text-generation endpoint.
type Client struct {
	url        string
	token      string
	httpClient *http.Client
}

// NewClient returns a Client for the model at url, authenticating with token.
func NewClient(url, token string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultModelURL
	}
	return &Client{
		url:        url,
		token:      token,
		httpClient: newHTTPClient(timeout),
	}
}

// Generate sends one prompt with params and returns the first generated text.
func (c *Client) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	body, err := json.Marshal(inferenceRequest{Inputs: prompt, Parameters: params})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var out []inferenceOutput
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("decode response: %w (raw: %s)", err, truncate(string(respBody), 200))
	}
	if len(out) == 0 {
		return "", errors.New("inference api returned no generations")
	}
	return out[0].GeneratedText, nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// newHTTPClient returns an HTTP client with keep-alives and the given overall timeout.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2: true,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// truncate keeps the first n characters of s for error messages.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
