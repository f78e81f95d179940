package config

import (
	"encoding/json"
	"os"

	"github.com/stfnandersen/go-wbs/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type jsonConfig struct {
	APIHost        string         `json:"api_host"`
	Scheme         string         `json:"scheme"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       *int           `json:"log_level"`
}

// parseJSON overlays cfg with values present in the JSON file at path.
// Absent fields leave the existing values untouched.
func parseJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.APIHost != "" {
		cfg.APIHost = jc.APIHost
	}
	if jc.Scheme != "" {
		cfg.Scheme = jc.Scheme
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
