package main

import (
	"log"

	"github.com/ridelog/faff-backend-go/internal/api"
	"github.com/ridelog/faff-backend-go/internal/config"
)

func main() {
	cfg := config.Load()

	router := api.SetupRouter(cfg)

	log.Printf("Server starting on port %s (gap threshold %v, split %s)",
		cfg.Port, cfg.GapThreshold, cfg.SplitPolicy)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
