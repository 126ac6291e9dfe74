// Package client is the repository adapter for the starclip remote API. It
// translates dashboard intents into authenticated REST calls and classifies
// every failure into an APIError kind. It holds no request state of its own;
// the canonical in-memory list lives in the dashboard package.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultTimeout = 30 * time.Second

// Envelope convention: every response body is either
// {"success":true,"data":...,"meta":...} or
// {"success":false,"error":{"message":...,"code":...}}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    *Meta           `json:"meta,omitempty"`
	Error   *remoteError    `json:"error,omitempty"`
}

type remoteError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Meta is the optional pagination block some list endpoints attach.
type Meta struct {
	Page  int `json:"page,omitempty"`
	Total int `json:"total,omitempty"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	session    *Session
	limiter    *rate.Limiter
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit throttles outgoing calls to r requests per second with the
// given burst. Zero r disables throttling.
func WithRateLimit(r float64, burst int) Option {
	return func(c *Client) {
		if r <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(r), burst)
	}
}

func New(baseURL string, session *Session, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		session:    session,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() *Session { return c.session }

// do executes one JSON round-trip and decodes the envelope's data into out.
// A non-2xx status and a success:false envelope surface identically.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return wrapAPIErr(c.logger, KindDecode, "", "encode request body", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, query, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.decode(resp, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	if c.session.Expired(time.Now()) {
		return nil, wrapAPIErr(c.logger, KindUnauthorized, "", "session expired", ErrSessionExpired)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, wrapAPIErr(c.logger, KindTransport, "", "build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.session.Token())
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, wrapAPIErr(c.logger, KindRateLimited, "", "rate limiter wait", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapAPIErr(c.logger, KindTransport, "", req.Method+" "+req.URL.Path+" failed", err)
	}
	return resp, nil
}

func (c *Client) decode(resp *http.Response, out any) error {
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 300 {
			return wrapAPIErr(c.logger, kindForHTTPStatus(resp.StatusCode), "", resp.Status, nil)
		}
		return wrapAPIErr(c.logger, KindDecode, "", "decode response envelope", err)
	}

	if resp.StatusCode >= 300 || !env.Success {
		msg := resp.Status
		code := ""
		if env.Error != nil {
			msg = env.Error.Message
			code = env.Error.Code
		}
		return wrapAPIErr(c.logger, kindForHTTPStatus(resp.StatusCode), code, msg, nil)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return wrapAPIErr(c.logger, KindDecode, "", "decode response data", err)
	}
	return nil
}
