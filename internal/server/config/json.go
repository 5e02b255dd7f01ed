package config

import (
	"encoding/json"
	"os"

	"github.com/CODE-SECX/English-Sikho/internal/flagx"
	"github.com/CODE-SECX/English-Sikho/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept both
// "15m" and integer nanoseconds. Fields left out keep their earlier value.
type JsonConfig struct {
	EndpointAddrGRPC  string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP  string         `json:"endpoint_addr_http"`
	DatabaseDriver    string         `json:"database_driver"`
	DatabaseDSN       string         `json:"database_dsn"`
	SecretKey         string         `json:"secret_key"`
	S3RootUser        string         `json:"s3_root_user"`
	S3RootPassword    string         `json:"s3_root_password"`
	S3Bucket          string         `json:"s3_bucket"`
	S3Region          string         `json:"s3_region"`
	S3BaseEndpoint    string         `json:"s3_base_endpoint"`
	ExportURLValidity timex.Duration `json:"export_url_validity"`
	ShareCacheSize    int            `json:"share_cache_size"`
	LogLevel          string         `json:"log_level"`
}

// parseJson overlays values from the file given by -c/-config. It panics if
// the file cannot be read or parsed.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.ConfigPath(args)

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.LogLevel, c.LogLevel)
	if c.ExportURLValidity.Duration != 0 {
		config.ExportURLValidity = c.ExportURLValidity.Duration
	}
	if c.ShareCacheSize != 0 {
		config.ShareCacheSize = c.ShareCacheSize
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
