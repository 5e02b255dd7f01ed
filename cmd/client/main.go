package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/CODE-SECX/English-Sikho/internal/buildinfo"
	"github.com/CODE-SECX/English-Sikho/internal/client/cli"
	"github.com/CODE-SECX/English-Sikho/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
