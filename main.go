package main

import (
	"flag"
	"log"

	"storefront/cmd"
	"storefront/config"
	"storefront/pkg/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	app, err := cmd.NewApp(cfg)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
