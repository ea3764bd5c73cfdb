// Package main implements the chess game server with a RESTful API
// and optional SQLite persistence.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chessgame/internal/service"
	"chessgame/internal/storage"
	"chessgame/internal/transport/http"
)

const gracefulShutdownTimeout = 5 * time.Second

func main() {
	var (
		host        = flag.String("host", "localhost", "API server host")
		port        = flag.Int("port", 8080, "API server port")
		dev         = flag.Bool("dev", false, "Development mode (relaxed rate limits, WAL journal)")
		storagePath = flag.String("storage-path", "", "Path to SQLite database file (disables persistence if empty)")
	)
	flag.Parse()

	var store *storage.Store
	if *storagePath != "" {
		log.Printf("Initializing persistent storage at: %s", *storagePath)
		var err error
		store, err = storage.NewStore(*storagePath, *dev)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		if err := store.InitDB(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("Warning: failed to close storage cleanly: %v", err)
			}
		}()
	} else {
		log.Printf("Persistent storage disabled (use -storage-path to enable)")
	}

	svc := service.New(store)
	app := http.NewFiberApp(svc, *dev)

	addr := fmt.Sprintf("%s:%d", *host, *port)
	go func() {
		log.Printf("API server listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Printf("Shutting down...")
	if err := app.ShutdownWithTimeout(gracefulShutdownTimeout); err != nil {
		log.Printf("Warning: shutdown error: %v", err)
	}
}
