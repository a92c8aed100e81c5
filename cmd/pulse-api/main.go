package main

import (
	"fmt"
	"log"

	"community-pulse/internal/api"
	"community-pulse/internal/config"
	"community-pulse/internal/store"
)

// @title Community Pulse API
// @version 1.0
// @description Member data cleaning and quality scoring service
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	fmt.Printf("📊 Community Pulse API — swagger UI at http://localhost%s/swagger/index.html\n", cfg.HTTPAddr)

	r := api.NewRouter(cfg)
	r.Start(cfg.HTTPAddr)
}
