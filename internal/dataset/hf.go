// internal/dataset/hf.go
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://datasets-server.huggingface.co"
	DefaultName    = "RealTimeData/bbc_news_alltime"
	DefaultConfig  = "2024-01"
	DefaultSplit   = "train"
)

// HFOptions configures an HFSource.
type HFOptions struct {
	BaseURL string        // datasets-server root, e.g. https://datasets-server.huggingface.co
	Dataset string        // dataset repository id
	Config  string        // dataset configuration (subset)
	Split   string        // split name
	Token   string        // optional bearer token
	Timeout time.Duration // per-request timeout
}

// HFSource reads articles through the Hugging Face datasets-server rows API.
type HFSource struct {
	opts       HFOptions
	httpClient *http.Client
}

// NewHFSource returns an HFSource; empty options take the package defaults.
func NewHFSource(opts HFOptions) *HFSource {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Dataset == "" {
		opts.Dataset = DefaultName
	}
	if opts.Config == "" {
		opts.Config = DefaultConfig
	}
	if opts.Split == "" {
		opts.Split = DefaultSplit
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	return &HFSource{opts: opts, httpClient: &http.Client{Timeout: opts.Timeout}}
}

type rowsResponse struct {
	Rows []struct {
		RowIdx int `json:"row_idx"`
		Row    struct {
			Content string `json:"content"`
		} `json:"row"`
	} `json:"rows"`
	Error string `json:"error"`
}

// Articles implements Source.
func (s *HFSource) Articles(ctx context.Context, offset, count int) ([]Article, error) {
	q := url.Values{}
	q.Set("dataset", s.opts.Dataset)
	q.Set("config", s.opts.Config)
	q.Set("split", s.opts.Split)
	q.Set("offset", strconv.Itoa(offset))
	q.Set("length", strconv.Itoa(count))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.opts.BaseURL+"/rows?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if s.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.opts.Token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("datasets api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datasets api status %d: %s", resp.StatusCode, string(body))
	}

	var rr rowsResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	if rr.Error != "" {
		return nil, fmt.Errorf("datasets api: %s", rr.Error)
	}

	articles := make([]Article, 0, len(rr.Rows))
	for _, r := range rr.Rows {
		articles = append(articles, Article{Index: r.RowIdx, Content: r.Row.Content})
	}
	return articles, nil
}
