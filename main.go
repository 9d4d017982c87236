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

	"github.com/mo-shahab/go-pong-mvc/config"
	"github.com/mo-shahab/go-pong-mvc/static"
	"github.com/mo-shahab/go-pong-mvc/wsserver"
)

func main() {
	configPath := flag.String("config", "pong.toml", "path to the configuration file")
	addr := flag.String("addr", "", "listen address, overrides the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	wsh := wsserver.NewWebSocketHandler(cfg)

	mux := http.NewServeMux()
	mux.Handle("/", static.Handler())
	mux.Handle("/ws", wsh)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting at http://localhost%s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// hijacked websocket connections are not tracked by the http server
	wsh.Shutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
