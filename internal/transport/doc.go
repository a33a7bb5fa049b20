// Package transport provides http.RoundTripper layers for the ganjoor client.
//
// # Layers
//
//   - CachingTransport keeps 200 responses to anonymous GET requests in a badger
//     database, keyed by method and full URL, with a per-entry TTL. Hits carry the
//     header X-Ganjoor-Cache: hit. Requests with an Authorization header always go
//     to the network.
//   - RateLimitedTransport waits on a token bucket (burst 1) before each request and
//     gives up when the request context ends.
//
// Chain stacks them so cache hits never spend a rate token:
//
//	cache, err := transport.Open(cfg.Cache.Dir)
//	if err != nil {
//		return err
//	}
//	defer cache.Close()
//
//	hc := &http.Client{
//		Timeout:   cfg.Timeout,
//		Transport: transport.Chain(nil, cache, cfg.Cache.TTL, cfg.Rate.RequestsPerSecond, logger),
//	}
//
// Cache read and write failures are logged and the request falls through to the
// network.
package transport
