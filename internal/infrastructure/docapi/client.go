// Package docapi implements the outbound client for the remote
// document-management REST API. Every endpoint is a POST carrying the
// bearer credential in a custom "token" header (empty when the caller is
// unauthenticated).
package docapi

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://apis.allsoft.co/api/documentManagement"

type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// New builds a raw client. requestsPerSecond <= 0 disables the
// client-side limiter.
func New(baseURL string, requestsPerSecond float64, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiter:    limiter,
		logger:     logger,
	}
}
