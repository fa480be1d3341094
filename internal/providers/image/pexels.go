package image

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"adcraft/internal/domain"
)

const defaultPexelsBaseURL = "https://api.pexels.com/v1"

// PexelsSearcher queries the Pexels photo search API.
type PexelsSearcher struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type pexelsSearchResponse struct {
	Photos []struct {
		Src struct {
			Original string `json:"original"`
			Large2x  string `json:"large2x"`
			Large    string `json:"large"`
			Medium   string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

// NewPexelsSearcher requires an API key. baseURL may be empty.
func NewPexelsSearcher(apiKey, baseURL string, client *http.Client) (*PexelsSearcher, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("pexels api key is required: %w", domain.ErrProviderUnavailable)
	}
	if client == nil {
		client = http.DefaultClient
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultPexelsBaseURL
	}
	return &PexelsSearcher{apiKey: apiKey, baseURL: baseURL, client: client}, nil
}

func (s *PexelsSearcher) Name() string {
	return pexelsSourceName
}

func (s *PexelsSearcher) Search(ctx context.Context, query string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("orientation", "square")
	params.Set("per_page", strconv.Itoa(clampLimit(limit)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("pexels: build request: %w", err)
	}
	req.Header.Set("Authorization", s.apiKey)
	req.Header.Set("Accept", "application/json")

	var payload pexelsSearchResponse
	if err := doJSON(s.client, req, &payload); err != nil {
		return nil, fmt.Errorf("pexels: %w", err)
	}
	urls := make([]string, 0, len(payload.Photos))
	for _, p := range payload.Photos {
		if u := firstURL(p.Src.Original, p.Src.Large2x, p.Src.Large, p.Src.Medium); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

var _ Searcher = (*PexelsSearcher)(nil)

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxResults {
		return MaxResults
	}
	return limit
}

func doJSON(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
