package config

import (
	"github.com/CODE-SECX/English-Sikho/internal/flagx"
)

// Environment variables read by parseEnv.
const (
	EnvGRPCAddr       = "SIKHO_GRPC_ADDR"
	EnvHTTPAddr       = "SIKHO_HTTP_ADDR"
	EnvDatabaseDriver = "SIKHO_DATABASE_DRIVER"
	EnvDatabaseDSN    = "SIKHO_DATABASE_DSN"
	EnvSecretKey      = "SIKHO_JWT_SECRET"
	EnvS3User         = "SIKHO_S3_USER"
	EnvS3Password     = "SIKHO_S3_PASSWORD"
	EnvS3Bucket       = "SIKHO_S3_BUCKET"
	EnvS3Region       = "SIKHO_S3_REGION"
	EnvS3Endpoint     = "SIKHO_S3_ENDPOINT"
	EnvLogLevel       = "SIKHO_LOG_LEVEL"
)

// parseEnv overlays non-empty environment variables.
func parseEnv(config *Config) {
	config.EndpointAddrGRPC = flagx.EnvOrDefault(EnvGRPCAddr, config.EndpointAddrGRPC)
	config.EndpointAddrHTTP = flagx.EnvOrDefault(EnvHTTPAddr, config.EndpointAddrHTTP)
	config.DatabaseDriver = flagx.EnvOrDefault(EnvDatabaseDriver, config.DatabaseDriver)
	config.DatabaseDSN = flagx.EnvOrDefault(EnvDatabaseDSN, config.DatabaseDSN)
	config.SecretKey = flagx.EnvOrDefault(EnvSecretKey, config.SecretKey)
	config.S3RootUser = flagx.EnvOrDefault(EnvS3User, config.S3RootUser)
	config.S3RootPassword = flagx.EnvOrDefault(EnvS3Password, config.S3RootPassword)
	config.S3Bucket = flagx.EnvOrDefault(EnvS3Bucket, config.S3Bucket)
	config.S3Region = flagx.EnvOrDefault(EnvS3Region, config.S3Region)
	config.S3BaseEndpoint = flagx.EnvOrDefault(EnvS3Endpoint, config.S3BaseEndpoint)
	config.LogLevel = flagx.EnvOrDefault(EnvLogLevel, config.LogLevel)
}
