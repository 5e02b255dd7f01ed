package config

import (
	"flag"

	"github.com/CODE-SECX/English-Sikho/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   address and port of the record store
//	-k string   API key
//	-l string   share link base URL
//
// Only these flags are kept (flagx.FilterArgs) so -c does not break parsing.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-k", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access the record store")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key")
	fs.StringVar(&cfg.ShareBaseURL, "l", cfg.ShareBaseURL, "base URL for share links")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
