package main

import (
	"context"
	"log"

	"github.com/udesk/userdesk/internal/client/cli"
	"github.com/udesk/userdesk/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}

}
