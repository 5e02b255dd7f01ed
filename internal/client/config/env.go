package config

import "github.com/CODE-SECX/English-Sikho/internal/flagx"

const (
	EnvStoreURL = "SIKHO_STORE_URL"
	EnvAnonKey  = "SIKHO_ANON_KEY"
	EnvShareURL = "SIKHO_SHARE_URL"
	EnvLogLevel = "SIKHO_LOG_LEVEL"
)

func parseEnv(cfg *Config) {
	cfg.ServerEndpointAddr = flagx.EnvOrDefault(EnvStoreURL, cfg.ServerEndpointAddr)
	cfg.APIKey = flagx.EnvOrDefault(EnvAnonKey, cfg.APIKey)
	cfg.ShareBaseURL = flagx.EnvOrDefault(EnvShareURL, cfg.ShareBaseURL)
	cfg.LogLevel = flagx.EnvOrDefault(EnvLogLevel, cfg.LogLevel)
}
