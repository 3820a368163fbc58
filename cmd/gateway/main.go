// cmd/gateway bridges the engine's Redis PubSub streams to dashboard
// WebSocket clients. It is a pure consumer: nothing it does feeds back into
// the statistical engine.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/go-redis/redis/v8"

	"pairs-enginev1/config"
	"pairs-enginev1/internal/gateway"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Println("[gateway] starting...")

	infra := config.Load()
	if infra.RedisAddr == "" {
		log.Fatal("[gateway] REDIS_ADDR is required")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     infra.RedisAddr,
		Password: infra.RedisPassword,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("[gateway] redis connection failed: %v", err)
	}
	log.Printf("[gateway] redis connected at %s", infra.RedisAddr)

	hub := gateway.NewHub(rdb)
	go hub.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: infra.GatewayAddr, Handler: mux}
	go func() {
		log.Printf("[gateway] listening on %s", infra.GatewayAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[gateway] server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[gateway] shutting down")
	cancel()
	server.Shutdown(context.Background())
}
