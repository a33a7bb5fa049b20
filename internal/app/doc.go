// Package app is the composition root shared by every ganjoor command.
//
// Open performs the startup sequence:
//
//  1. Load ~/.config/ganjoor/config.toml with GANJOOR_* overrides
//  2. Build the zap logger (JSON on stderr, Warn or Debug with verbose)
//  3. Open the badger response cache unless disabled
//  4. Compose the HTTP transport: cache, then rate limit, then the network
//  5. Construct the ganjoor.Client with base URL, language and app name
//
// The resulting Session is used by the CLI for one-shot commands and by Read for
// the terminal reader. Close must be called to release the cache directory lock.
//
// # Error Handling
//
// Configuration and client errors are fatal and returned from Open. A cache that
// cannot be opened (for example because another ganjoor process holds the lock)
// is logged at Warn and the session continues uncached.
package app
