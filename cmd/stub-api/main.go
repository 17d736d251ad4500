package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alphabetter/internal/stubapi"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8000", "Listen address")
	fixturePath := flag.String("fixture", "testdata/fixtures.json", "Path to the fixture file")
	flag.Parse()

	fx, err := stubapi.LoadFixture(*fixturePath)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}

	srv := &http.Server{
		Addr:         *addr,
		Handler:      stubapi.NewRouter(fx),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Stub API listening on %s (%d props, %d team lines)", *addr, len(fx.Props), len(fx.Teams))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
