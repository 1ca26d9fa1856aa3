package requests

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// ExternalAPIService is a small helper for calling external quote feeds.
// Every request carries a caller context so each lookup gets its own
// deadline; the feed endpoints reject default Go user agents, so a
// browser-like UA is always sent.
type ExternalAPIService struct {
	client    *http.Client
	userAgent string
}

// NewExternalAPIService creates a new instance of ExternalAPIService
func NewExternalAPIService(timeout time.Duration) *ExternalAPIService {
	return &ExternalAPIService{
		client:    &http.Client{Timeout: timeout},
		userAgent: "Mozilla/5.0",
	}
}

// Get makes a GET request to the external service, accepting optional query parameters
func (s *ExternalAPIService) Get(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	if params != nil {
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	return s.client.Do(req)
}
