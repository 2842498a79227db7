package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	apperrors "github.com/SkDevilS/E-Commerce-Web-Application/pkg/errors"
	"github.com/SkDevilS/E-Commerce-Web-Application/pkg/httpclient"
)

// HTTPDoer is the interface for executing HTTP requests.
// Both httpclient.Client and httpclient.BreakerClient satisfy this.
type HTTPDoer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token for authenticated calls. An empty
// token means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client talks to the storefront backend REST API. It owns no cart or
// wishlist state; the stores reconcile their local state from its responses.
type Client struct {
	baseURL string
	http    HTTPDoer
	tokens  TokenSource
	logger  *slog.Logger
}

// NewClient creates a storefront API client. baseURL includes the /api
// prefix, e.g. "http://localhost:5000/api".
func NewClient(baseURL string, doer HTTPDoer, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    doer,
		tokens:  tokens,
		logger:  logger,
	}
}

// do executes a JSON request against the backend and returns the raw
// response. A non-nil body is marshaled as JSON. Circuit-open rejections are
// mapped to a service-unavailable error so callers see one taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		if errors.Is(err, httpclient.ErrCircuitOpen) {
			return nil, apperrors.Unavailable("storefront API is temporarily unavailable, please retry shortly")
		}
		return nil, fmt.Errorf("call storefront API: %w", err)
	}
	return resp, nil
}

// decodeJSON decodes a 2xx response body into dst, translating any error
// status into the application error taxonomy first. dst may be nil when the
// caller only cares about success.
func (c *Client) decodeJSON(resp *http.Response, dst any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseResponseError(resp)
	}

	if dst == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorBody mirrors the backend's error envelope.
type errorBody struct {
	Error string `json:"error"`
}

// parseResponseError reads a non-2xx response body and translates it into an
// AppError, preserving the server's message when the body matches the
// standard envelope. The body is fully consumed; the caller closes it.
func parseResponseError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("storefront API returned status %d (failed to read body: %w)", resp.StatusCode, err)
	}

	message := ""
	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		message = body.Error
	}
	if message == "" {
		message = fmt.Sprintf("storefront API returned status %d", resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return apperrors.InvalidInput(message)
	case http.StatusUnauthorized:
		return apperrors.Unauthorized(message)
	case http.StatusForbidden:
		return apperrors.Forbidden(message)
	case http.StatusNotFound:
		return &apperrors.AppError{
			Code:    "NOT_FOUND",
			Message: message,
			Status:  http.StatusNotFound,
			Err:     apperrors.ErrNotFound,
		}
	case http.StatusConflict:
		return apperrors.Conflict(message)
	case http.StatusServiceUnavailable:
		return apperrors.Unavailable(message)
	default:
		return &apperrors.AppError{
			Code:    "UPSTREAM_ERROR",
			Message: message,
			Status:  resp.StatusCode,
			Err:     apperrors.ErrInternal,
		}
	}
}
