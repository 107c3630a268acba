package odin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-nutrition/internal/platform/httpclient"
	"pet-nutrition/internal/ports/auth"
)

var (
	ErrOdinNotConfigured = errors.New("odin client not configured")
	ErrOdinUnauthorized  = errors.New("odin unauthorized")
	ErrOdinUpstream      = errors.New("odin upstream error")
)

const verifyPath = "/v1/tokens/verify"

// Config del cliente Odin.
type Config struct {
	BaseURL string
	APIKey  string

	// Header donde va la API key; vacío => "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
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
		return nil, fmt.Errorf("odin: %w", err)
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

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	TenantID string `json:"tenant_id"`
}

// VerifyToken llama a Odin (POST /v1/tokens/verify) y devuelve los claims.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrOdinNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrOdinUnauthorized
	}

	var out verifyResponse
	err := c.http.DoJSON(ctx, http.MethodPost, verifyPath,
		map[string]string{
			c.apiKeyHeader:  c.apiKey,
			"Authorization": "Bearer " + token,
		},
		verifyRequest{Token: token}, &out,
	)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && (he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden) {
			return auth.Claims{}, ErrOdinUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrOdinUpstream, err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrOdinUpstream)
	}

	return auth.Claims{
		UserID:   out.UserID,
		Email:    strings.TrimSpace(out.Email),
		TenantID: strings.TrimSpace(out.TenantID),
	}, nil
}
