package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/core/port"
)

const (
	tracerName = "digigrow-web/internal/adapter/api"

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 4 << 20
)

var (
	_ port.Backend         = (*Client)(nil)
	_ port.BackendProvider = (*Client)(nil)
)

// Client is an outbound adapter for the agency REST backend. A Client made
// by New is anonymous; As returns a copy bound to a session's credentials.
type Client struct {
	baseURL url.URL
	http    *http.Client
	logger  *slog.Logger
	tracer  trace.Tracer
	creds   port.Credentials
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Its Timeout is
// overwritten by the timeout passed to New.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTracerProvider sets the provider spans are created from. The global
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) { c.tracer = tp.Tracer(tracerName) }
}

// New creates a client for the API rooted at baseURL. Every request is
// bounded by timeout.
func New(baseURL url.URL, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		logger:  slog.Default(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	hc := *c.http
	hc.Timeout = timeout
	c.http = &hc
	return c
}

// As returns a view of the client that authenticates with creds. Passing
// nil yields an anonymous view.
func (c *Client) As(creds port.Credentials) port.Backend {
	cp := *c
	cp.creds = creds
	return &cp
}

// envelope is the backend's ApiResponse wrapper.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do performs one request inside a client span. The returned string is the
// envelope message of a successful response, if any.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) (string, error) {
	ctx, span := c.tracer.Start(ctx, "api."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	start := time.Now()
	msg, status, err := c.roundTrip(ctx, method, path, query, body, out)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	c.logger.DebugContext(ctx, "api request",
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Duration("elapsed", time.Since(start)),
		slog.Any("error", err),
	)
	return msg, err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body, out any) (string, int, error) {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return "", 0, domain.NewAPIError(domain.KindUnknown, 0, "could not encode request", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return "", 0, domain.NewAPIError(domain.KindUnknown, 0, "could not build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	var token string
	if c.creds != nil {
		token = c.creds.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", resp.StatusCode, transportError(err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized && token != "":
		c.creds.Unauthorized(ctx, token)
		return "", resp.StatusCode, domain.NewAPIError(domain.KindSessionExpired, resp.StatusCode,
			"Your session has expired. Please log in again.", nil)
	case resp.StatusCode == http.StatusUnauthorized:
		return "", resp.StatusCode, statusError(domain.KindAuthentication, resp.StatusCode, raw)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", resp.StatusCode, statusError(domain.KindUnknown, resp.StatusCode, raw)
	}

	msg, err := unwrap(raw, out, resp.StatusCode)
	return msg, resp.StatusCode, err
}

// unwrap decodes a 2xx body into out. Enveloped bodies are unwrapped to
// their data; a body with success=false is an error even on 2xx.
func unwrap(raw []byte, out any, status int) (string, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Success != nil {
		if !*env.Success {
			msg := env.Message
			if msg == "" {
				msg = "request failed"
			}
			return "", domain.BackendError(domain.KindUnknown, status, msg)
		}
		if out != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return "", decodeError(status, err)
			}
		}
		return env.Message, nil
	}
	if out == nil {
		return "", nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return "", decodeError(status, err)
	}
	return "", nil
}

// messageFrom extracts a human-readable message from an error body.
func messageFrom(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

func statusError(kind domain.ErrorKind, status int, raw []byte) error {
	if msg := messageFrom(raw); msg != "" {
		return domain.BackendError(kind, status, msg)
	}
	return domain.NewAPIError(kind, status, http.StatusText(status), nil)
}

func decodeError(status int, err error) error {
	return domain.NewAPIError(domain.KindUnknown, status, "unexpected response from server", err)
}

func transportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return domain.NewAPIError(domain.KindTransport, 0, "request timed out", err)
	case errors.Is(err, context.Canceled):
		return domain.NewAPIError(domain.KindTransport, 0, "request canceled", err)
	default:
		return domain.NewAPIError(domain.KindTransport, 0, "backend unreachable", err)
	}
}
