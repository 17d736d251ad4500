package fetcher

import "time"

// Config contains configurable parameters for the API client.
// Use DefaultConfig() to get sensible defaults, then override as needed.
type Config struct {
	BaseURL   string        // API root, without trailing slash (default: "http://127.0.0.1:8000")
	Timeout   time.Duration // Per-request timeout (default: 10s)
	UserAgent string        // Sent on every request
}

// DefaultConfig returns a Config pointing at a locally running API.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://127.0.0.1:8000",
		Timeout:   10 * time.Second,
		UserAgent: "alphabetter/1.0",
	}
}

// WithBaseURL returns a copy of the config with a different API root.
func (c Config) WithBaseURL(u string) Config {
	c.BaseURL = u
	return c
}

// WithTimeout returns a copy of the config with a different request timeout.
func (c Config) WithTimeout(d time.Duration) Config {
	c.Timeout = d
	return c
}

// WithUserAgent returns a copy of the config with a different user agent.
func (c Config) WithUserAgent(ua string) Config {
	c.UserAgent = ua
	return c
}
