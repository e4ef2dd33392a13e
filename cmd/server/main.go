package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/joho/godotenv"
	"github.com/mmuslimabdulj/lobby-chat/internal/config"
	httpHandler "github.com/mmuslimabdulj/lobby-chat/internal/delivery/http"
	"github.com/mmuslimabdulj/lobby-chat/internal/delivery/ws"
	"github.com/mmuslimabdulj/lobby-chat/internal/middleware"
	"github.com/mmuslimabdulj/lobby-chat/internal/usecase"
)

func main() {
	// Load .env file (ignore error if not exists, e.g. in production)
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Configuring Logging
	if cfg.Silent() {
		log.SetOutput(io.Discard)
	}

	// Initialize dependencies
	coordinator := usecase.NewCoordinator(
		usecase.NewPresenceRegistry(),
		usecase.NewMessageStore(cfg.MaxHistorySize),
		usecase.WithSystemNotices(cfg.RecordSystemNotices),
	)
	hub := ws.NewHub(coordinator,
		ws.WithMaxFrameSize(cfg.MaxFrameSize),
		ws.WithDebug(cfg.Debug()),
	)

	hubCtx, stopHub := context.WithCancel(context.Background())
	go hub.Run(hubCtx)

	handler := httpHandler.NewHandler(hub, coordinator, cfg)
	wsLimiter := middleware.NewIPRateLimiter(cfg.WSLimit(), cfg.RateLimitWSBurst)

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler.NewRouter(handler, wsLimiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Lobby chat running at http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting HTTP, then close every WebSocket
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Println("Shutting down server...")
				return server.Shutdown(ctx)
			},
			"chat-hub": func(ctx context.Context) error {
				stopHub()
				return nil
			},
		},
	)

	exitCode := <-wait
	if exitCode != 0 {
		log.Printf("Shutdown completed with exit code: %d", exitCode)
		os.Exit(exitCode)
	}

	log.Println("Server exited gracefully")
}
