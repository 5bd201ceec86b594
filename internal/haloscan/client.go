// Package haloscan sends authenticated requests to the Haloscan SEO API.
package haloscan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/occirank/Haloscan-mcp-server/internal/credential"
	"github.com/occirank/Haloscan-mcp-server/internal/shared/stringutils"
)

const (
	// DefaultBaseURL is the production Haloscan API root.
	DefaultBaseURL = "https://api.haloscan.com/api"

	// APIKeyHeader carries the credential on every upstream request.
	APIKeyHeader = "haloscan-api-key"

	maxErrorBody = 200
)

// Verb is the HTTP method of a capability.
type Verb string

const (
	VerbGet  Verb = http.MethodGet
	VerbPost Verb = http.MethodPost
)

// Valid reports whether the client can send v.
func (v Verb) Valid() bool { return v == VerbGet || v == VerbPost }

// Request describes one upstream call.
type Request struct {
	Route   string         // path relative to the base URL, e.g. "/keywords/overview"
	Verb    Verb           // GET sends Payload as query, POST as JSON body
	Payload map[string]any // validated arguments
	APIKey  string
}

// Options configures a Client. Zero values select defaults.
type Options struct {
	BaseURL    string
	Timeout    time.Duration // 0 leaves the HTTP client without a deadline
	HTTPClient *http.Client
}

// Client performs Haloscan API calls. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client.
func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{baseURL: base, httpClient: hc}
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// Dispatch sends req and returns the raw JSON body of a 2xx response.
//
// Errors are credential.ErrMissing and ErrUnsupportedVerb (both before any
// network I/O) or *RequestError for transport failures, non-2xx statuses and
// bodies that are not JSON.
func (c *Client) Dispatch(ctx context.Context, req Request) (json.RawMessage, error) {
	if req.APIKey == "" {
		return nil, credential.ErrMissing
	}
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		slog.Debug("haloscan request failed", "verb", req.Verb, "route", req.Route, "err", err)
		return nil, &RequestError{Route: req.Route, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	slog.Debug("haloscan request",
		"verb", req.Verb, "route", req.Route,
		"status", resp.StatusCode, "elapsed", time.Since(start))
	if err != nil {
		return nil, &RequestError{
			Route:   req.Route,
			Status:  resp.StatusCode,
			Message: "read response: " + err.Error(),
			Err:     err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{
			Route:   req.Route,
			Status:  resp.StatusCode,
			Message: statusMessage(resp.StatusCode, body),
		}
	}
	if !json.Valid(body) {
		return nil, &RequestError{
			Route:   req.Route,
			Status:  resp.StatusCode,
			Message: "invalid JSON response",
		}
	}
	return json.RawMessage(body), nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	if !req.Verb.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVerb, req.Verb)
	}

	target := c.baseURL + req.Route
	var body io.Reader
	switch req.Verb {
	case VerbGet:
		query, err := encodeQuery(req.Payload)
		if err != nil {
			return nil, fmt.Errorf("encode query for %s: %w", req.Route, err)
		}
		if query != "" {
			target += "?" + query
		}
	case VerbPost:
		payload := req.Payload
		if payload == nil {
			payload = map[string]any{}
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode body for %s: %w", req.Route, err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Verb), target, body)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", req.Route, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(APIKeyHeader, req.APIKey)
	return httpReq, nil
}

// encodeQuery turns validated arguments into a query string. Arrays become
// repeated keys; keys are sorted by url.Values.Encode.
func encodeQuery(payload map[string]any) (string, error) {
	if len(payload) == 0 {
		return "", nil
	}
	q := url.Values{}
	for k, v := range payload {
		switch list := v.(type) {
		case []any:
			for _, item := range list {
				s, err := formatScalar(item)
				if err != nil {
					return "", fmt.Errorf("%s: %w", k, err)
				}
				q.Add(k, s)
			}
		case []string:
			for _, s := range list {
				q.Add(k, s)
			}
		case []float64:
			for _, f := range list {
				q.Add(k, strconv.FormatFloat(f, 'f', -1, 64))
			}
		default:
			s, err := formatScalar(v)
			if err != nil {
				return "", fmt.Errorf("%s: %w", k, err)
			}
			q.Set(k, s)
		}
	}
	return q.Encode(), nil
}

func formatScalar(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case json.Number:
		return x.String(), nil
	default:
		return "", fmt.Errorf("unsupported query value of type %T", v)
	}
}

func statusMessage(status int, body []byte) string {
	msg := fmt.Sprintf("Request failed with status code %d", status)
	if detail := strings.TrimSpace(string(body)); detail != "" {
		msg += ": " + stringutils.Truncate(detail, maxErrorBody)
	}
	return msg
}
