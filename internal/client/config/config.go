// Package config loads runtime settings for the ScentID client.
//
// Sources are applied in order, later ones overriding earlier ones:
// defaults → JSON file (-c/-config) → environment → command-line flags.
package config

import "time"

// Config holds runtime settings for the ScentID CLI.
type Config struct {
	// BaseURL is the root of the backend REST API.
	BaseURL string `env:"SCENTID_BASE_URL"`
	// DatabaseDSN locates the local SQLite database holding the session.
	DatabaseDSN string `env:"SCENTID_DATABASE_DSN"`
	// SearchDebounce is the pause after the last search input change
	// before a request is issued.
	SearchDebounce time.Duration `env:"SCENTID_SEARCH_DEBOUNCE"`
	// PopularLimit is the size of the popular-fragrances baseline.
	PopularLimit int `env:"SCENTID_POPULAR_LIMIT"`
	// HistoryPageSize is the page size for scan history requests.
	HistoryPageSize int `env:"SCENTID_HISTORY_PAGE_SIZE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api"
	c.DatabaseDSN = "scentid.db"
	c.SearchDebounce = 300 * time.Millisecond
	c.PopularLimit = 10
	c.HistoryPageSize = 50
}

// LoadConfig constructs a Config from all sources.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
