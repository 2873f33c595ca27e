package config

import (
	"encoding/json"
	"os"

	"github.com/Annomy111/foerder-finder/internal/flagx"
	"github.com/Annomy111/foerder-finder/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify intervals either as strings like
// "500ms" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	BaseURL         string         `json:"base_url"`
	DatabasePath    string         `json:"database_path"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	GenerateTimeout timex.Duration `json:"generate_timeout"`
	SearchDebounce  timex.Duration `json:"search_debounce"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via -c or -config. When no file is given the function returns without
// touching cfg. Read or unmarshal errors panic; startup is the only
// caller and has nothing sensible to continue with.
func parseJson(cfg *Config) {
	fileName := flagx.JsonConfigFlags()
	if fileName == "" {
		return
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.GenerateTimeout.Duration != 0 {
		cfg.GenerateTimeout = jc.GenerateTimeout.Duration
	}
	if jc.SearchDebounce.Duration != 0 {
		cfg.SearchDebounce = jc.SearchDebounce.Duration
	}
}
