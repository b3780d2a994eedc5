// Command access-consumer drains access events published by the server and
// appends them to ACCESS_LOG_DIR/access.log.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/iliyamo/basic-server/internal/config"
	"github.com/iliyamo/basic-server/internal/queue"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEventsConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("access-consumer: queue=%s dir=%s", cfg.Queue, cfg.LogDir)
	err := queue.StartAccessConsumer(ctx, cfg.URL, cfg.Queue, cfg.LogDir)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
