package main

import (
	"log"

	"mpesa-reconciler/config"
	"mpesa-reconciler/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	app.Run(cfg)
}
