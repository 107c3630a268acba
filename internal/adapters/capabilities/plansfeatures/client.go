package plansfeatures

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-nutrition/internal/platform/httpclient"
)

var (
	ErrPlansNotConfigured = errors.New("plans-features client not configured")
	ErrPlansUnauthorized  = errors.New("plans-features unauthorized")
	ErrPlansUpstream      = errors.New("plans-features upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	APIKeyHeader string
	Timeout      time.Duration
}

type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("plans-features: %w", err)
	}
	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

type CapabilitiesResponse struct {
	// {"nutrition:feeding_calculator": true}
	Capabilities map[string]bool `json:"capabilities"`
}

// GetCapabilities: GET /v1/capabilities?user_id=...
func (c *Client) GetCapabilities(ctx context.Context, userID string) (CapabilitiesResponse, error) {
	if !c.IsConfigured() {
		return CapabilitiesResponse{}, ErrPlansNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return CapabilitiesResponse{}, errors.New("userID required")
	}

	var out CapabilitiesResponse
	err := c.http.DoJSON(ctx, http.MethodGet,
		"/v1/capabilities?user_id="+url.QueryEscape(userID),
		map[string]string{c.apiKeyHeader: c.apiKey},
		nil, &out,
	)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && (he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden) {
			return CapabilitiesResponse{}, ErrPlansUnauthorized
		}
		return CapabilitiesResponse{}, fmt.Errorf("%w: %v", ErrPlansUpstream, err)
	}
	if out.Capabilities == nil {
		out.Capabilities = map[string]bool{}
	}
	return out, nil
}
