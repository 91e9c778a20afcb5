package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nadocloud/nadoquest/internal/common"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "/api"

// TokenProvider supplies the current access token for outbound requests.
// An empty string means "no session": the request is sent without an
// authorization header. The session store implements this.
type TokenProvider interface {
	Token() string
}

// TokenFunc adapts a plain function to TokenProvider.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client talks to the Nado Quest backend. Construct with New; the zero
// value is not usable.
type Client struct {
	baseURL      string
	mediaBaseURL string
	http         *http.Client
	tokens       TokenProvider

	Auth        *AuthAPI
	Families    *FamilyAPI
	Quests      *QuestAPI
	Points      *PointAPI
	Invitations *InvitationAPI
	Media       *MediaAPI
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The default is
// http.DefaultClient: no timeout is imposed here, transport defaults apply.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenProvider injects the session token source.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) { c.tokens = tp }
}

// WithMediaBaseURL sets the base used to derive media retrieval URLs.
func WithMediaBaseURL(u string) Option {
	return func(c *Client) { c.mediaBaseURL = strings.TrimRight(u, "/") }
}

// New builds a Client against baseURL (DefaultBaseURL when empty).
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Auth = &AuthAPI{c: c}
	c.Families = &FamilyAPI{c: c}
	c.Quests = &QuestAPI{c: c}
	c.Points = &PointAPI{c: c}
	c.Invitations = &InvitationAPI{c: c}
	c.Media = &MediaAPI{c: c}
	return c
}

// newRequest builds a request for path (relative to the base URL) and
// attaches the bearer token when one is available.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		}
	}
	return req, nil
}

// doJSON performs a JSON request/response exchange. A nil body sends no
// payload; a nil out discards the response body. Non-2xx responses are
// normalized into *Error; transport errors propagate unmodified.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, reader, "application/json")
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// listEnvelope is the {"data": [...]} wrapper used by collection endpoints.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}
