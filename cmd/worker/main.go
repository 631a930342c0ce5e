package main

import (
	"fmt"
	"log"
	"net/http"

	"plexconsole/internal/pkg/logger"
	"plexconsole/internal/platform/config"
	"plexconsole/internal/workers"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init("plexconsole-worker", cfg.Logging)

	receiver := workers.NewSyncReceiver(cfg.Sync.Secret)

	mux := http.NewServeMux()
	mux.HandleFunc("/sync", receiver.Handle)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port+1)
	log.Printf("Worker listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Worker failed: %v", err)
	}
}
