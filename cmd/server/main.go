package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"

	"github.com/iliyamo/basic-server/internal/config"                  // Internal config loader
	"github.com/iliyamo/basic-server/internal/middleware"              // Access event publisher interface
	"github.com/iliyamo/basic-server/internal/router"                  // Internal router setup
	queue_publisher "github.com/iliyamo/basic-server/internal/service" // RabbitMQ publisher
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load() // Load environment config
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var pub middleware.EventPublisher
	if cfg.Events.Enabled {
		p, err := queue_publisher.Dial(cfg.Events.URL, cfg.Events.Queue)
		if err != nil {
			log.Fatalf("access events: %v", err)
		}
		defer p.Close()
		pub = p
	}

	e := router.New(cfg, pub) // Build Echo with middleware and routes

	addr := cfg.Addr()
	log.Printf("listening on %s (env=%s, access_events=%t)", addr, cfg.Env, cfg.Events.Enabled)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
