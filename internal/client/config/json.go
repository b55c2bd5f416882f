package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/scentid/scentid-cli/internal/flagx"
	"github.com/scentid/scentid-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be written either as strings like "300ms"
// or as integer nanoseconds.
type JsonConfig struct {
	BaseURL         string         `json:"base_url"`
	DatabaseDSN     string         `json:"database_dsn"`
	SearchDebounce  timex.Duration `json:"search_debounce"`
	PopularLimit    int            `json:"popular_limit"`
	HistoryPageSize int            `json:"history_page_size"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. When no file is given, nothing happens. Read or parse
// errors panic; the loader runs before anything else has started.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SearchDebounce.Duration != 0 {
		cfg.SearchDebounce = time.Duration(jc.SearchDebounce.Duration)
	}
	if jc.PopularLimit != 0 {
		cfg.PopularLimit = jc.PopularLimit
	}
	if jc.HistoryPageSize != 0 {
		cfg.HistoryPageSize = jc.HistoryPageSize
	}
}
