// Package api is a small JSON POST client for the kit backend. Every call
// sends the access token in the x-access-token header and a fresh
// x-request-id, and reports failures as typed errors wrapping ErrRequest.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

const (
	headerAccessToken = "x-access-token"
	headerRequestID   = "x-request-id"

	maxBodyBytes = 10 << 20
)

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client posts JSON to endpoints under a base URL.
type Client struct {
	baseURL string
	http    HTTPDoer
	tokens  oauth2.TokenSource
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c HTTPDoer) Option {
	return func(cl *Client) { cl.http = c }
}

// WithTokenSource supplies the access token when Post is called without one.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(cl *Client) { cl.tokens = ts }
}

// WithLogger sets the logger. The default discards.
func WithLogger(l zerolog.Logger) Option {
	return func(cl *Client) { cl.log = l }
}

// New returns a Client for baseURL. A trailing slash on baseURL is dropped;
// see URL for how endpoints are joined.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the base the client posts under.
func (c *Client) BaseURL() string { return c.baseURL }

// URL joins the base and endpoint, adding a leading slash to endpoint when
// it has none.
func (c *Client) URL(endpoint string) string {
	if endpoint != "" && !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.baseURL + endpoint
}

// Post sends data as JSON to endpoint. An empty token falls back to the
// configured token source, then to no token at all.
func (c *Client) Post(ctx context.Context, endpoint string, data any, token string) (*Response, error) {
	url := c.URL(endpoint)

	payload, err := marshalBody(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	if token == "" {
		token = c.sourceToken()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAccessToken, token)
	req.Header.Set(headerRequestID, requestID)

	log := c.log.With().Str("url", url).Str("request_id", requestID).Logger()
	log.Debug().Msg("posting")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("post failed")
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	log.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("response received")

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Msg: errorMessage(body)}
	}
	if !gjson.ValidBytes(body) {
		var probe any
		return nil, &DecodeError{Body: body, Err: json.Unmarshal(body, &probe)}
	}
	if e := gjson.GetBytes(body, "error"); truthy(e) {
		return nil, &ServerError{Value: e.Value()}
	}
	return &Response{Status: resp.StatusCode, Body: body}, nil
}

// truthy reports whether an "error" field should fail the call. false, null,
// "" and 0 do not.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	}
	return r.Exists()
}

func (c *Client) sourceToken() string {
	if c.tokens == nil {
		return ""
	}
	tok, err := c.tokens.Token()
	if err != nil {
		c.log.Debug().Err(err).Msg("no access token available")
		return ""
	}
	return tok.AccessToken
}

// marshalBody passes raw JSON through untouched.
func marshalBody(data any) ([]byte, error) {
	switch v := data.(type) {
	case nil:
		return []byte("{}"), nil
	case json.RawMessage:
		return v, nil
	case []byte:
		return v, nil
	}
	return json.Marshal(data)
}

// errorMessage is the string "error" field of a failed response body.
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return DefaultErrorMessage
	}
	e := gjson.GetBytes(body, "error")
	if e.Type != gjson.String || e.Str == "" {
		return DefaultErrorMessage
	}
	return e.Str
}
