package config

import "os"

// Environment variable names recognized by parseEnv.
const (
	EnvAPIBaseURL   = "NADOQUEST_API_BASE_URL"
	EnvMediaBaseURL = "NADOQUEST_MEDIA_BASE_URL"
	EnvStateDBPath  = "NADOQUEST_STATE_DB"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseEnv overlays Config with values from environment variables.
// Unset or empty variables leave the existing values untouched.
func parseEnv(cfg *Config) {
	cfg.APIBaseURL = getEnv(EnvAPIBaseURL, cfg.APIBaseURL)
	cfg.MediaBaseURL = getEnv(EnvMediaBaseURL, cfg.MediaBaseURL)
	cfg.StateDBPath = getEnv(EnvStateDBPath, cfg.StateDBPath)
}
