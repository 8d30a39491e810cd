package fobini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// DefaultBaseURL is the production API origin.
const DefaultBaseURL = "https://tech-brain-api.onrender.com"

// DefaultTimeout is the uniform connection and total-transfer timeout
// applied to every request.
const DefaultTimeout = 60 * time.Second

// TokenProvider supplies the current access token. The second return value
// is false when no session is active.
type TokenProvider interface {
	AccessToken() (string, bool)
}

// SessionInvalidator is notified when the server answers 401; the client
// proactively logs itself out on any unauthorized response, regardless of
// which endpoint produced it.
type SessionInvalidator interface {
	ClearSession()
}

// Client executes Endpoint values against the API origin. It builds the
// request (auth header, query vs body parameter placement), runs it, and
// maps every failure to exactly one value of the error taxonomy. It never
// retries and never caches.
type Client struct {
	baseURL     string
	timeout     time.Duration
	httpClient  *http.Client
	tokens      TokenProvider
	invalidator SessionInvalidator
	logger      *slog.Logger
	metrics     *Metrics
}

// NewClient creates a new API client. It reads FOBINI_BASE_URL and
// FOBINI_TIMEOUT from the environment by default; options override.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: envOrDefault("FOBINI_BASE_URL", DefaultBaseURL),
		timeout: parseDurationEnv("FOBINI_TIMEOUT", DefaultTimeout),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// Do executes the endpoint and decodes the JSON response body into result.
// result must be a pointer to the expected envelope type.
func (c *Client) Do(ctx context.Context, ep Endpoint, result any) error {
	return c.execute(ctx, ep, result)
}

// DoDiscard executes the endpoint and discards the response body. Failures
// are classified exactly as in Do.
func (c *Client) DoDiscard(ctx context.Context, ep Endpoint) error {
	return c.execute(ctx, ep, nil)
}

func (c *Client) execute(ctx context.Context, ep Endpoint, result any) error {
	req, err := c.buildRequest(ctx, ep)
	if err != nil {
		// Local precondition failures issue no network call and are not
		// counted as requests.
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport-level failure before any HTTP response: connectivity
		// loss and timeouts land here.
		c.metrics.observe(ep.method, "no_connection", time.Since(start).Seconds())
		c.logger.Debug("request failed before response",
			"method", ep.method, "path", ep.path, "error", err)
		return ErrNoConnection
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observe(ep.method, "unknown", time.Since(start).Seconds())
		return &UnknownError{Message: err.Error()}
	}

	c.logger.Debug("api response",
		"method", ep.method, "path", ep.path,
		"status", resp.StatusCode, "bytes", len(body))

	if err := c.classifyStatus(resp.StatusCode, body); err != nil {
		c.metrics.observe(ep.method, errorLabel(err), time.Since(start).Seconds())
		return err
	}

	// A success:false envelope under an unclassified status is treated as a
	// validation failure, uniformly for every endpoint.
	if err := checkEnvelope(body); err != nil {
		c.metrics.observe(ep.method, errorLabel(err), time.Since(start).Seconds())
		return err
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			c.metrics.observe(ep.method, "decoding_error", time.Since(start).Seconds())
			return ErrDecoding
		}
	}

	c.metrics.observe(ep.method, "ok", time.Since(start).Seconds())
	return nil
}

// buildRequest composes the http.Request for an endpoint. It performs no
// network I/O. Failure modes: ErrUnauthorized when the endpoint requires
// auth and no token is stored, ErrInvalidURL when origin+path does not
// parse as an absolute URL, ErrDecoding when the payload cannot be
// serialized.
func (c *Client) buildRequest(ctx context.Context, ep Endpoint) (*http.Request, error) {
	var token string
	if ep.requiresAuth {
		tok, ok := c.currentToken()
		if !ok {
			return nil, ErrUnauthorized
		}
		token = tok
	}

	u, err := url.Parse(c.baseURL + ep.path)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidURL
	}

	params, err := ep.Parameters()
	if err != nil {
		return nil, ErrDecoding
	}

	var bodyReader io.Reader
	if ep.method == http.MethodGet {
		if params != nil {
			q := u.Query()
			for k, v := range params {
				q.Set(k, fmt.Sprint(v))
			}
			u.RawQuery = q.Encode()
		}
	} else if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, ErrDecoding
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, u.String(), bodyReader)
	if err != nil {
		return nil, ErrInvalidURL
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request",
		"method", ep.method, "url", u.String(),
		"request_id", requestID, "token_fp", tokenFingerprint(token))

	return req, nil
}

func (c *Client) currentToken() (string, bool) {
	if c.tokens == nil {
		return "", false
	}
	tok, ok := c.tokens.AccessToken()
	if !ok || tok == "" {
		return "", false
	}
	return tok, true
}

// classifyStatus maps an HTTP status to the error taxonomy. Status-driven
// classification takes precedence over everything else; unlisted statuses
// fall through to the decode attempt.
func (c *Client) classifyStatus(status int, body []byte) error {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &ValidationError{Message: parseErrorMessage(body)}
	case status == http.StatusUnauthorized:
		if c.invalidator != nil {
			c.invalidator.ClearSession()
		}
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 500 && status <= 599:
		return ErrServer
	}
	return nil
}

// checkEnvelope probes the shared {success, message?, data} envelope.
// success:false becomes a validation error with the embedded message.
func checkEnvelope(body []byte) error {
	var probe struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		// Not an envelope; the typed decode decides.
		return nil
	}
	if probe.Success != nil && !*probe.Success {
		msg := probe.Message
		if msg == "" {
			msg = fallbackValidationMessage
		}
		return &ValidationError{Message: msg}
	}
	return nil
}

// parseErrorMessage extracts a human-readable message from a 400/422 body,
// checking message, then error, then a success:false envelope's message.
func parseErrorMessage(body []byte) string {
	if len(body) == 0 {
		return fallbackValidationMessage
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallbackValidationMessage
	}
	if msg, ok := payload["message"].(string); ok && msg != "" {
		return msg
	}
	if msg, ok := payload["error"].(string); ok && msg != "" {
		return msg
	}
	if success, ok := payload["success"].(bool); ok && !success {
		if msg, ok := payload["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return fallbackValidationMessage
}

// errorLabel returns the metrics status label for a classified error.
func errorLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrServer):
		return "server_error"
	case errors.Is(err, ErrDecoding):
		return "decoding_error"
	case errors.Is(err, ErrNoConnection):
		return "no_connection"
	default:
		return "unknown"
	}
}

// tokenFingerprint returns a short stable hash of the token for debug logs.
// The raw token is never logged.
func tokenFingerprint(token string) string {
	if token == "" {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64String(token), 16)
}

// Helper functions for env var parsing.

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func parseDurationEnv(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	// Try parsing as seconds (integer).
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	// Try parsing as duration string.
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return defaultVal
}
