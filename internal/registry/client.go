// Package registry provides the HTTP client for the Move Registry API.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/guttosm/mvr-resolver/internal/logger"
	"github.com/guttosm/mvr-resolver/internal/resolver"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Version is reported in the User-Agent header.
const Version = "0.1.0"

const (
	// DefaultRetryAfter applies when a 429 response carries no usable Retry-After.
	DefaultRetryAfter = 60 * time.Second

	maxBodyBytes = 1 << 20
	minAddrLen   = 42
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// Client talks to a Move Registry endpoint. It implements resolver.Fetcher.
// Deadlines come from the caller's context.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
	log       zerolog.Logger
}

var _ resolver.Fetcher = (*Client)(nil)

// NewClient creates a registry client for the given endpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		userAgent: "mvr-resolver/" + Version,
		log:       logger.Component("registry"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// packageBody is the JSON form of a package resolution.
type packageBody struct {
	Address   string `json:"address"`
	PackageID string `json:"package_id"`
}

// typeBody is the JSON form of a type resolution.
type typeBody struct {
	TypeSignature string `json:"type_signature"`
	Signature     string `json:"signature"`
}

// FetchPackage resolves a package name via GET /resolve/package/{name}.
func (c *Client) FetchPackage(ctx context.Context, name string) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/resolve/package/"+escapeName(name), nil, func() error {
		return resolver.PackageNotFound(name)
	})
	if err != nil {
		return "", err
	}
	return parsePackageBody(body)
}

// FetchType resolves a type name via GET /resolve/type/{name}.
func (c *Client) FetchType(ctx context.Context, name string) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/resolve/type/"+escapeName(name), nil, func() error {
		return resolver.TypeNotFound(name)
	})
	if err != nil {
		return "", err
	}
	return parseTypeBody(body)
}

// escapeName escapes each "/"-separated segment of a name so that the
// separators reach the registry as path delimiters.
func escapeName(name string) string {
	segments := strings.Split(name, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// FetchBatch resolves several names via POST /resolve/batch.
func (c *Client) FetchBatch(ctx context.Context, req model.BatchRequest) (*model.BatchResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, resolver.DecodeError("encode batch request", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/resolve/batch", payload, nil)
	if err != nil {
		return nil, err
	}

	var resp model.BatchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, resolver.DecodeError("invalid batch response", err)
	}
	return &resp, nil
}

// do performs a request and maps non-200 responses to resolver errors.
// notFound builds the error for a 404; nil falls through to a server error.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, notFound func() error) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, resolver.TransportError(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("Registry request failed")
		return nil, resolver.TransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resolver.TransportError(err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Registry request completed")

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound && notFound != nil:
		return nil, notFound()
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, resolver.RateLimitExceeded(parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()))
	default:
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = "Unknown error"
		}
		return nil, resolver.ServerError(resp.StatusCode, msg)
	}
}

// parseRetryAfter reads delta-seconds or an HTTP date, defaulting to DefaultRetryAfter.
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return DefaultRetryAfter
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d.Round(time.Second)
		}
		return 0
	}
	return DefaultRetryAfter
}

// parsePackageBody accepts a bare address, a JSON string, or a JSON object.
func parsePackageBody(body []byte) (string, error) {
	text := strings.TrimSpace(string(body))
	if isAddress(text) {
		return text, nil
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		if isAddress(s) {
			return s, nil
		}
		return "", resolver.DecodeError(fmt.Sprintf("invalid address %q", s), nil)
	}

	var pb packageBody
	if err := json.Unmarshal(body, &pb); err != nil {
		return "", resolver.DecodeError("invalid package response", err)
	}
	switch {
	case pb.Address != "":
		return pb.Address, nil
	case pb.PackageID != "":
		return pb.PackageID, nil
	default:
		return "", resolver.DecodeError("no address in response", nil)
	}
}

func parseTypeBody(body []byte) (string, error) {
	var tb typeBody
	if err := json.Unmarshal(body, &tb); err != nil {
		return "", resolver.DecodeError("invalid type response", err)
	}
	switch {
	case tb.TypeSignature != "":
		return tb.TypeSignature, nil
	case tb.Signature != "":
		return tb.Signature, nil
	default:
		return "", resolver.DecodeError("no type signature in response", nil)
	}
}

func isAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && len(s) >= minAddrLen
}
