// Package config loads the ganjoor client configuration.
//
// # Resolution Order
//
//  1. Built-in defaults (Default)
//  2. The TOML file at the given path, or ~/.config/ganjoor/config.toml
//  3. GANJOOR_* environment variables
//
// A missing file is not an error. Empty strings in the file keep the default.
//
// # TOML Format
//
//	base_url = "https://ganjgah.ir"
//	language = "fa-IR"
//	app_name = "ganjoor-go"
//	username = ""
//	timeout = "15s"
//
//	[cache]
//	enabled = true
//	dir = "~/.cache/ganjoor"
//	ttl = "24h"
//
//	[rate]
//	requests_per_second = 0
//
// # Environment
//
//   - GANJOOR_BASE_URL, GANJOOR_LANGUAGE, GANJOOR_APP_NAME, GANJOOR_TIMEOUT
//   - GANJOOR_USERNAME, GANJOOR_PASSWORD (the password is never read from the file)
//   - GANJOOR_CACHE_ENABLED, GANJOOR_CACHE_DIR, GANJOOR_CACHE_TTL
//   - GANJOOR_RATE_LIMIT
//
// # Validation
//
// Load rejects a base URL that is not http(s), an empty language or app name,
// and negative durations or rates. Errors name the TOML key.
package config
