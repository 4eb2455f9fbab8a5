package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sessionizemcp/config"
	"sessionizemcp/internal/adapters/sessionize"
	delivery "sessionizemcp/internal/delivery/mcp"
	"sessionizemcp/internal/services"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	fetcher := sessionize.NewHTTPFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.BaseURL)
	querySvc := services.NewEventQueryService(fetcher)
	dispatcher := delivery.NewDispatcher(querySvc, cfg.EventID, logger)
	server := delivery.New(dispatcher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.HTTPAddr != "" {
		runHTTP(ctx, cfg, logger, server)
		return
	}
	runStdio(ctx, cfg, logger, server)
}

// runStdio serves one MCP session over stdin/stdout. Outside production the
// transport echoes protocol traffic to stderr.
func runStdio(ctx context.Context, cfg *config.Config, logger *slog.Logger, server *mcp.Server) {
	var transport mcp.Transport = mcp.NewStdioTransport()
	if cfg.Environment != "production" {
		transport = mcp.NewLoggingTransport(transport, os.Stderr)
	}

	logger.Info("starting sessionize mcp server", "transport", "stdio", "default_event_id", cfg.EventID)
	if err := server.Run(ctx, transport); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// runHTTP serves MCP over streamable HTTP with a health endpoint, request
// logging, and optional CORS. Shutdown drains in-flight requests.
func runHTTP(ctx context.Context, cfg *config.Config, logger *slog.Logger, server *mcp.Server) {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var root http.Handler = mux
	if len(cfg.CORSOrigins) > 0 {
		root = delivery.CORS(cfg.CORSOrigins, root)
	}
	root = delivery.LoggingMiddleware(logger, root)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: root}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("starting sessionize mcp server", "transport", "http", "addr", cfg.HTTPAddr, "default_event_id", cfg.EventID)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
