package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/daticahealth/snapdash/logs"
)

// DefaultHost is the profile microservice used when no host is configured.
const DefaultHost = "https://profile-microservice.onrender.com"

const (
	msgUnreachable  = "could not reach the profile service"
	msgMalformed    = "malformed response from profile service"
	msgNoToken      = "authentication token not found"
	msgSessionError = "could not read session"
)

// TokenProvider supplies the session token attached to each request. An empty
// token means there is no authenticated session.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a plain function to TokenProvider.
type TokenFunc func(ctx context.Context) (string, error)

// Token calls f.
func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticToken is a TokenProvider that always returns the same token.
type StaticToken string

// Token returns the static token.
func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

// Client talks to the profile microservice. It holds no per-call state, so a
// single Client may be shared between goroutines.
type Client struct {
	host       string
	tokens     TokenProvider
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New builds a new Client instance.
func New(host string, tokens TokenProvider, opts ...Option) *Client {
	if host == "" {
		host = DefaultHost
	}
	if tokens == nil {
		tokens = StaticToken("")
	}
	c := &Client{
		host:       strings.TrimRight(host, "/"),
		tokens:     tokens,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Host returns the base URL requests are sent to.
func (c *Client) Host() string {
	return c.host
}

func buildHeaders(token string, hasBody bool) http.Header {
	headers := http.Header{
		"Accept":       {"application/json"},
		"X-Request-Id": {uuid.NewString()},
	}
	if hasBody {
		headers.Set("Content-Type", "application/json")
	}
	if token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}
	return headers
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.host + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) makeRequest(ctx context.Context, method, path string, query url.Values, token string, body interface{}) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header = buildHeaders(token, body != nil)

	logs.Debugv("profile request", "method", method, "path", path, "request_id", req.Header.Get("X-Request-Id"))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	return resp.StatusCode, respBody, err
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// errorBody is the error shape returned by the profile service. Detail is a
// plain string for handled errors and a list of objects for validation errors.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

// ConvertError extracts the human readable message from an error response,
// falling back to def when the body carries none.
func ConvertError(resp []byte, def string) string {
	eb := errorBody{}
	if err := json.Unmarshal(resp, &eb); err != nil || len(eb.Detail) == 0 {
		return def
	}
	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return def
		}
		return s
	}
	var issues []validationIssue
	if err := json.Unmarshal(eb.Detail, &issues); err == nil {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			if issue.Msg != "" {
				msgs = append(msgs, issue.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return def
}

// token resolves the session token. A provider error is reported as a
// failure Result.
func (c *Client) token(ctx context.Context) (string, *Result) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		logs.Printv("Token lookup failed: %v", err)
		r := failure(fmt.Sprintf("%s: %v", msgSessionError, err))
		return "", &r
	}
	return token, nil
}
