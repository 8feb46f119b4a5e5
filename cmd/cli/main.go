package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gatewayauth/internal/client/cli"
	"github.com/dmitrijs2005/gatewayauth/internal/client/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	app, err := cli.NewApp(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
