package image

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"adcraft/internal/domain"
)

const defaultUnsplashBaseURL = "https://api.unsplash.com"

// UnsplashSearcher queries the Unsplash search API.
type UnsplashSearcher struct {
	accessKey string
	baseURL   string
	client    *http.Client
}

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Raw     string `json:"raw"`
			Full    string `json:"full"`
			Regular string `json:"regular"`
			Small   string `json:"small"`
		} `json:"urls"`
	} `json:"results"`
}

func NewUnsplashSearcher(accessKey, baseURL string, client *http.Client) (*UnsplashSearcher, error) {
	accessKey = strings.TrimSpace(accessKey)
	if accessKey == "" {
		return nil, fmt.Errorf("unsplash access key is required: %w", domain.ErrProviderUnavailable)
	}
	if client == nil {
		client = http.DefaultClient
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultUnsplashBaseURL
	}
	return &UnsplashSearcher{accessKey: accessKey, baseURL: baseURL, client: client}, nil
}

func (s *UnsplashSearcher) Name() string {
	return unsplashSourceName
}

func (s *UnsplashSearcher) Search(ctx context.Context, query string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("orientation", "squarish")
	params.Set("per_page", strconv.Itoa(clampLimit(limit)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("unsplash: build request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)
	req.Header.Set("Accept-Version", "v1")

	var payload unsplashSearchResponse
	if err := doJSON(s.client, req, &payload); err != nil {
		return nil, fmt.Errorf("unsplash: %w", err)
	}
	urls := make([]string, 0, len(payload.Results))
	for _, r := range payload.Results {
		if u := firstURL(r.URLs.Raw, r.URLs.Full, r.URLs.Regular, r.URLs.Small); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

var _ Searcher = (*UnsplashSearcher)(nil)
