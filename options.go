package fobini

import (
	"log/slog"
	"net/http"
	"time"
)

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithBaseURL sets the API origin. If not set, defaults to the
// FOBINI_BASE_URL environment variable or DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the uniform request timeout.
// If not set, defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom http.Client for making requests.
// This is useful for testing, proxying, or custom transport configurations.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSession wires a SessionManager in as both the token source and the
// target of the 401 session-invalidation side effect.
func WithSession(s *SessionManager) Option {
	return func(c *Client) {
		c.tokens = s
		c.invalidator = s
	}
}

// WithTokenProvider sets the source of the bearer token. Use WithSession
// unless a custom token source is needed (e.g. a fixed token in tests).
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) {
		c.tokens = tp
	}
}

// WithSessionInvalidator sets the component notified when the server
// answers 401. Use WithSession unless a custom target is needed.
func WithSessionInvalidator(si SessionInvalidator) Option {
	return func(c *Client) {
		c.invalidator = si
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics enables request metrics collection.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}
