package main

import (
	"context"
	"log"
	"os"

	"github.com/CODE-SECX/English-Sikho/internal/buildinfo"
	"github.com/CODE-SECX/English-Sikho/internal/server"
	"github.com/CODE-SECX/English-Sikho/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
