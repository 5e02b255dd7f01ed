// Command keygen signs an API key for the record store.
//
//	keygen -s <secret> [-role anon|service_role] [-ttl 0]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/flagx"
	"github.com/CODE-SECX/English-Sikho/internal/server/auth"
	"github.com/CODE-SECX/English-Sikho/internal/server/config"
)

func main() {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	secret := fs.String("s", flagx.EnvOrDefault(config.EnvSecretKey, "secretKey"), "secret the server verifies keys with")
	role := fs.String("role", common.RoleAnon, "key role: anon or service_role")
	ttl := fs.Duration("ttl", 0, "key lifetime, 0 for no expiry")
	_ = fs.Parse(os.Args[1:])

	key, err := auth.GenerateAPIKey(*role, []byte(*secret), *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(key)
}
