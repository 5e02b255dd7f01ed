// Package config loads runtime configuration for the terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: SIKHO_STORE_URL, SIKHO_ANON_KEY, SIKHO_SHARE_URL,
//     SIKHO_LOG_LEVEL, read after loading a .env file if one exists.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   address:port of the record store
//	-k string   API key sent with every call
//	-l string   base URL used for share links
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "api_key": "eyJ...",
//	  "share_base_url": "http://localhost:8080",
//	  "request_timeout": "10s",
//	  "log_level": "warn"
//	}
package config
