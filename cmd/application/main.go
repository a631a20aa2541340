package main

import (
	"flag"
	"log"
	"os"

	"gowebshop/config"
	shopapp "gowebshop/internal/shop/app"
	"gowebshop/pkg/logger"
)

func main() {
	configPath := flag.String("config", "app.yaml", "path to the yaml config")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("config %s not loaded (%v), using defaults", *configPath, err)
		cfg = config.DefaultConfig()
	}

	loggers := logger.NewRegistry(os.Stdout)

	server := shopapp.NewShopServer(cfg, loggers)
	if err := server.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
