package config

import "time"

// Config holds runtime settings for the Nado Quest CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - MediaBaseURL: base URL used to build retrieval links for uploaded media.
//   - StateDBPath: path of the SQLite file holding local session state.
//   - RequestTimeout: per-request HTTP timeout. Zero disables the timeout.
type Config struct {
	APIBaseURL     string
	MediaBaseURL   string
	StateDBPath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "/api"
	c.MediaBaseURL = "https://media-forge.nado.cloud"
	c.StateDBPath = "nadoquest.db"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
