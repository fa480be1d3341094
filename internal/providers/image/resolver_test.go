package image

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"adcraft/internal/domain"
)

type stubSearcher struct {
	name    string
	results map[string][]string
	err     error
	queries []string
	limits  []int
}

func (s *stubSearcher) Name() string { return s.name }

func (s *stubSearcher) Search(ctx context.Context, query string, limit int) ([]string, error) {
	s.queries = append(s.queries, query)
	s.limits = append(s.limits, limit)
	if s.err != nil {
		return nil, s.err
	}
	found := s.results[query]
	if len(found) > limit {
		found = found[:limit]
	}
	return found, nil
}

type recordedLookup struct{ source, outcome string }

type stubRecorder struct {
	lookups []recordedLookup
}

func (r *stubRecorder) RecordImageLookup(source, outcome string) {
	r.lookups = append(r.lookups, recordedLookup{source, outcome})
}

func TestQueryVariants(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		brief domain.Brief
		want  []string
	}{
		{
			name:  "from_fields",
			brief: domain.Brief{Product: "Cold Brew", Category: "coffee", ImageStyle: "moody", ColorHint: "amber"},
			want: []string{
				"Cold Brew coffee moody amber",
				"Cold Brew coffee moody amber product photo moody",
				"Cold Brew coffee moody amber studio, minimal",
			},
		},
		{
			name:  "explicit_query",
			brief: domain.Brief{Product: "Cold Brew", ImageQuery: "  iced   coffee "},
			want:  []string{"iced coffee", "iced coffee product photo", "iced coffee studio, minimal"},
		},
		{
			name:  "empty",
			brief: domain.Brief{},
			want:  nil,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.want, QueryVariants(tc.brief)); diff != "" {
				t.Fatalf("QueryVariants mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolverWithoutSearchersReturnsEmpty(t *testing.T) {
	t.Parallel()
	r := NewResolver(Options{})
	urls, err := r.Resolve(context.Background(), domain.Brief{Product: "Widget"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if urls == nil || len(urls) != 0 {
		t.Fatalf("urls = %#v, want empty slice", urls)
	}
	if _, err := r.Lookup(context.Background(), "widget", 3); !errors.Is(err, domain.ErrNoSearchers) {
		t.Fatalf("Lookup err = %v, want ErrNoSearchers", err)
	}
}

func TestResolverFallsThroughSearchersAndDedupes(t *testing.T) {
	t.Parallel()
	brief := domain.Brief{Product: "Widget"}
	variants := QueryVariants(brief)
	failing := &stubSearcher{name: "pexels", err: errors.New("boom")}
	working := &stubSearcher{name: "unsplash", results: map[string][]string{
		variants[0]: {"u1", "u2"},
		variants[1]: {"u2", "u3", "u4"},
		variants[2]: {"u5", "u6", "u7", "u8"},
	}}
	rec := &stubRecorder{}
	r := NewResolver(Options{Searchers: []Searcher{failing, working}, Recorder: rec})

	urls, err := r.Resolve(context.Background(), brief)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"u1", "u2", "u3", "u4", "u5", "u6"}, urls); diff != "" {
		t.Fatalf("urls mismatch (-want +got):\n%s", diff)
	}
	if len(failing.queries) != 3 {
		t.Fatalf("failing searcher queried %d times, want 3", len(failing.queries))
	}
	if rec.lookups[0] != (recordedLookup{"pexels", "error"}) || rec.lookups[1] != (recordedLookup{"unsplash", "hit"}) {
		t.Fatalf("unexpected lookups: %+v", rec.lookups)
	}
}

func TestResolverStopsAtMaxResults(t *testing.T) {
	t.Parallel()
	brief := domain.Brief{Product: "Widget"}
	variants := QueryVariants(brief)
	first := &stubSearcher{name: "pexels", results: map[string][]string{
		variants[0]: {"a", "b", "c", "d", "e", "f"},
	}}
	second := &stubSearcher{name: "unsplash"}
	r := NewResolver(Options{Searchers: []Searcher{first, second}})

	urls, err := r.Resolve(context.Background(), brief)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(urls) != MaxResults {
		t.Fatalf("len(urls) = %d, want %d", len(urls), MaxResults)
	}
	if len(second.queries) != 0 {
		t.Fatalf("second searcher should not be queried, got %v", second.queries)
	}
	if len(first.queries) != 1 {
		t.Fatalf("first searcher queried %d times, want 1", len(first.queries))
	}
}

func TestResolverRequestsFullPagePastRepeatedHits(t *testing.T) {
	t.Parallel()
	brief := domain.Brief{Product: "Widget"}
	variants := QueryVariants(brief)
	searcher := &stubSearcher{name: "pexels", results: map[string][]string{
		variants[0]: {"a", "b", "c", "d"},
		variants[1]: {"a", "b", "e", "f", "g", "h"},
		variants[2]: {"a", "b", "i", "j", "k", "l"},
	}}
	r := NewResolver(Options{Searchers: []Searcher{searcher}})

	urls, err := r.Resolve(context.Background(), brief)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e", "f"}, urls); diff != "" {
		t.Fatalf("urls mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{MaxResults, MaxResults}, searcher.limits); diff != "" {
		t.Fatalf("requested limits mismatch (-want +got):\n%s", diff)
	}
}

func TestResolverReportsCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewResolver(Options{Searchers: []Searcher{&stubSearcher{name: "pexels"}}})
	if _, err := r.Resolve(ctx, domain.Brief{Product: "Widget"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestPexelsSearcherPrefersLargestRendition(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "pexels-key" {
			t.Errorf("Authorization = %q", got)
		}
		q := r.URL.Query()
		if q.Get("orientation") != "square" || q.Get("per_page") != "6" || q.Get("query") != "cold brew" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"photos": []map[string]any{
				{"src": map[string]string{"original": "https://p/1-orig", "large": "https://p/1-large"}},
				{"src": map[string]string{"large2x": "https://p/2-2x", "medium": "https://p/2-med"}},
				{"src": map[string]string{}},
			},
		})
	}))
	defer srv.Close()

	s, err := NewPexelsSearcher("pexels-key", srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("NewPexelsSearcher returned error: %v", err)
	}
	urls, err := s.Search(context.Background(), "cold brew", 10)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"https://p/1-orig", "https://p/2-2x"}, urls); diff != "" {
		t.Fatalf("urls mismatch (-want +got):\n%s", diff)
	}
}

func TestUnsplashSearcher(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/photos" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Client-ID unsplash-key" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.URL.Query().Get("orientation"); got != "squarish" {
			t.Errorf("orientation = %q", got)
		}
		fmt.Fprint(w, `{"results":[{"urls":{"raw":"https://u/raw","small":"https://u/small"}},{"urls":{"regular":"https://u/reg"}}]}`)
	}))
	defer srv.Close()

	s, err := NewUnsplashSearcher("unsplash-key", srv.URL+"/", nil)
	if err != nil {
		t.Fatalf("NewUnsplashSearcher returned error: %v", err)
	}
	urls, err := s.Search(context.Background(), "widget", 3)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"https://u/raw", "https://u/reg"}, urls); diff != "" {
		t.Fatalf("urls mismatch (-want +got):\n%s", diff)
	}
}

func TestSearcherReportsHTTPStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s, err := NewPexelsSearcher("k", srv.URL, nil)
	if err != nil {
		t.Fatalf("NewPexelsSearcher returned error: %v", err)
	}
	if _, err := s.Search(context.Background(), "widget", 6); err == nil {
		t.Fatal("expected error for 429")
	}
}

func TestSearchersRequireKeys(t *testing.T) {
	t.Parallel()
	if _, err := NewPexelsSearcher(" ", "", nil); !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("pexels err = %v", err)
	}
	if _, err := NewUnsplashSearcher("", "", nil); !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("unsplash err = %v", err)
	}
	r := NewResolver(Options{PexelsAPIKey: "a", UnsplashAccessKey: "b"})
	if diff := cmp.Diff([]string{"pexels", "unsplash"}, r.Sources()); diff != "" {
		t.Fatalf("Sources mismatch (-want +got):\n%s", diff)
	}
}
