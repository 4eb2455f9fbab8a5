package sessionize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"sessionizemcp/internal/domain"
)

const defaultBaseURL = "https://sessionize.com"

type sessionizeHTTPFetcher struct {
	client  *http.Client
	baseURL string
}

// NewHTTPFetcher returns a fetcher that calls the Sessionize API.
// baseURL defaults to the public Sessionize endpoint when empty.
func NewHTTPFetcher(client *http.Client, baseURL string) domain.EventFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &sessionizeHTTPFetcher{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (f *sessionizeHTTPFetcher) GetSpeakers(ctx context.Context, eventID string) ([]*domain.Speaker, error) {
	var speakers []*domain.Speaker
	if err := f.getView(ctx, eventID, "Speakers", &speakers); err != nil {
		return nil, err
	}
	return speakers, nil
}

func (f *sessionizeHTTPFetcher) GetSessions(ctx context.Context, eventID string) ([]*domain.SessionGroup, error) {
	var groups []*domain.SessionGroup
	if err := f.getView(ctx, eventID, "Sessions", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (f *sessionizeHTTPFetcher) GetSchedule(ctx context.Context, eventID string) ([]*domain.GridDay, error) {
	var days []*domain.GridDay
	if err := f.getView(ctx, eventID, "GridSmart", &days); err != nil {
		return nil, err
	}
	return days, nil
}

// getView fetches /api/v2/{eventID}/view/{view} and decodes the body into
// out. A JSON null body leaves out untouched, which callers treat as an
// event with no data.
func (f *sessionizeHTTPFetcher) getView(ctx context.Context, eventID, view string, out any) error {
	url := fmt.Sprintf("%s/api/v2/%s/view/%s", f.baseURL, eventID, view)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// Sessionize caches responses aggressively; request fresh data.
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	req.Header.Set("Pragma", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch from sessionize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.UpstreamError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode sessionize response: %w", err)
	}
	return nil
}
