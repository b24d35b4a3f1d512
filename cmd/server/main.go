package main

import (
	"flag"
	"log"

	"turadmin/internal/app"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "путь до yaml-конфига")
	flag.Parse()

	if err := app.Run(*configPath); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}
