package ganjoor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public Ganjoor API host.
	DefaultBaseURL = "https://ganjgah.ir"
	// DefaultLanguage is sent with login requests.
	DefaultLanguage = "fa-IR"
	// DefaultAppName identifies this client to the server on login.
	DefaultAppName = "ganjoor-go"

	defaultUserAgent = "ganjoor-go/0.1"
	requestTimeout   = 15 * time.Second
)

// Client talks to the Ganjoor HTTP API. It is the single configuration point for
// base URL, language and application name, and holds the bearer token after Login.
//
// A Client is not safe for concurrent use while Login may be running.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	language  string
	appName   string
	token     string
	logger    *zap.Logger
	dec       decoder
}

type options struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	language   string
	appName    string
	token      string
	logger     *zap.Logger
	strict     bool
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL points the client at a different API host.
func WithBaseURL(raw string) Option {
	return func(o *options) { o.baseURL = raw }
}

// WithHTTPClient replaces the default http.Client (15s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithLanguage sets the localization tag sent on login.
func WithLanguage(lang string) Option {
	return func(o *options) { o.language = lang }
}

// WithAppName sets the client application name sent on login.
func WithAppName(name string) Option {
	return func(o *options) { o.appName = name }
}

// WithToken starts the client with a previously obtained bearer token.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithLogger routes request logs to logger. The default discards them.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithStrictDecoding makes hydration reject response fields the entity types do not
// declare. By default unknown fields are ignored.
func WithStrictDecoding() Option {
	return func(o *options) { o.strict = true }
}

// NewClient builds a Client.
func NewClient(opts ...Option) (*Client, error) {
	o := options{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		language:  DefaultLanguage,
		appName:   DefaultAppName,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	base, err := parseBaseURL(o.baseURL)
	if err != nil {
		return nil, err
	}
	hc := o.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: requestTimeout}
	}
	logger := o.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:   base,
		http:      hc,
		userAgent: o.userAgent,
		language:  o.language,
		appName:   o.appName,
		token:     o.token,
		logger:    logger,
		dec:       decoder{strict: o.strict},
	}, nil
}

// BaseURL returns the API host the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// AvatarURL resolves a poet's relative image URL against the base URL.
func (c *Client) AvatarURL(p Poet) string {
	if strings.TrimSpace(p.ImageURL) == "" {
		return ""
	}
	ref, err := url.Parse(p.ImageURL)
	if err != nil {
		return ""
	}
	return c.baseURL.ResolveReference(ref).String()
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	rel := &url.URL{Path: path}
	if len(query) > 0 {
		rel.RawQuery = query.Encode()
	}
	return c.doURL(ctx, http.MethodGet, rel, nil, nil)
}

// getFresh is get for endpoints that answer differently on every call. The request
// carries Cache-Control: no-store so caching round-trippers pass it through.
func (c *Client) getFresh(ctx context.Context, path string, query url.Values) ([]byte, error) {
	rel := &url.URL{Path: path}
	if len(query) > 0 {
		rel.RawQuery = query.Encode()
	}
	return c.doURL(ctx, http.MethodGet, rel, nil, http.Header{"Cache-Control": {"no-store"}})
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, payload any, header http.Header) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("ganjoor request",
		zap.String("method", method),
		zap.String("path", rel.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, &RemoteRequestError{
			Method:     method,
			Path:       rel.Path,
			StatusCode: resp.StatusCode,
			Reason:     reasonPhrase(resp),
		}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
