package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"vehicle-inventory-frontend/internal/adapters/primary/cli"
	"vehicle-inventory-frontend/internal/adapters/secondary/inventoryapi"
	"vehicle-inventory-frontend/internal/config"
	ports "vehicle-inventory-frontend/internal/core/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.WarnLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	connect := func(api config.APIConfig) ports.InventoryAPI {
		return inventoryapi.NewClient(&api)
	}

	app := cli.NewApp(cfg.API, connect, os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
