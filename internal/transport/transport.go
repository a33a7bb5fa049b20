package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// CacheHeader is set to "hit" on responses served from the cache.
const CacheHeader = "X-Ganjoor-Cache"

// CachingTransport answers repeated anonymous GET requests from a Cache.
// Only 200 responses are stored. Requests marked Cache-Control no-store or no-cache
// always go to Base. Cache failures fall through to Base.
type CachingTransport struct {
	Base   http.RoundTripper
	Cache  *Cache
	TTL    time.Duration
	Logger *zap.Logger
}

// RoundTrip implements http.RoundTripper.
func (t *CachingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := orDefault(t.Base)
	if t.Cache == nil || !cacheable(req) {
		return base.RoundTrip(req)
	}
	logger := t.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	key := cacheKey(req)
	if e, ok, err := t.Cache.get(key); err != nil {
		logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		logger.Debug("cache hit", zap.String("key", key))
		return e.response(req), nil
	}

	resp, err := base.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		return resp, err
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	e := entry{Status: resp.StatusCode, ContentType: resp.Header.Get("Content-Type"), Body: body}
	if err := t.Cache.put(key, e, t.TTL); err != nil {
		logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return resp, nil
}

// cacheable admits anonymous GETs that do not opt out with Cache-Control
// no-store or no-cache.
func cacheable(req *http.Request) bool {
	if req.Method != http.MethodGet || req.Header.Get("Authorization") != "" {
		return false
	}
	for _, value := range req.Header.Values("Cache-Control") {
		for directive := range strings.SplitSeq(value, ",") {
			switch strings.ToLower(strings.TrimSpace(directive)) {
			case "no-store", "no-cache":
				return false
			}
		}
	}
	return true
}

func cacheKey(req *http.Request) string {
	return req.Method + " " + req.URL.String()
}

func (e entry) response(req *http.Request) *http.Response {
	header := http.Header{}
	if e.ContentType != "" {
		header.Set("Content-Type", e.ContentType)
	}
	header.Set(CacheHeader, "hit")
	header.Set("Content-Length", strconv.Itoa(len(e.Body)))
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status)),
		StatusCode:    e.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(e.Body)),
		ContentLength: int64(len(e.Body)),
		Request:       req,
	}
}

// RateLimitedTransport paces outgoing requests through a token bucket.
type RateLimitedTransport struct {
	Base    http.RoundTripper
	Limiter *rate.Limiter
}

// NewRateLimitedTransport allows rps requests per second with a burst of one.
func NewRateLimitedTransport(base http.RoundTripper, rps float64) *RateLimitedTransport {
	return &RateLimitedTransport{
		Base:    base,
		Limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// RoundTrip implements http.RoundTripper.
func (t *RateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}
	return orDefault(t.Base).RoundTrip(req)
}

// Chain composes the round-tripper the client uses: cache first, then pacing, then
// base. A nil cache or a non-positive rps leaves that layer out.
func Chain(base http.RoundTripper, cache *Cache, ttl time.Duration, rps float64, logger *zap.Logger) http.RoundTripper {
	rt := orDefault(base)
	if rps > 0 {
		rt = NewRateLimitedTransport(rt, rps)
	}
	if cache != nil {
		rt = &CachingTransport{Base: rt, Cache: cache, TTL: ttl, Logger: logger}
	}
	return rt
}

func orDefault(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		return http.DefaultTransport
	}
	return rt
}
