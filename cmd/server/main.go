package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/qbox/qadocgen/internal/assemble"
	"github.com/qbox/qadocgen/internal/config"
	"github.com/qbox/qadocgen/internal/coverage"
	"github.com/qbox/qadocgen/internal/delivery"
	"github.com/qbox/qadocgen/internal/generator"
	"github.com/qbox/qadocgen/internal/server"
	"github.com/qbox/qadocgen/internal/staging"
	"github.com/qbox/qadocgen/internal/trace"

	"github.com/qiniu/x/log"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 打印加载的配置
	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal config to JSON: %v", err)
	}
	log.Printf("Loaded configuration:\n%s", string(configBytes))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stagingMgr, err := staging.NewManager(cfg.Staging.BaseDir, cfg.Staging.CleanupAfter)
	if err != nil {
		log.Fatalf("Failed to create staging manager: %v", err)
	}

	// 外部投递服务初始化失败时回退到本地投递，服务照常启动
	publisher, err := delivery.NewPublisher(ctx, cfg)
	if err != nil {
		log.Warnf("Delivery provider %q unavailable, falling back to local: %v",
			cfg.Delivery.Provider, err)
		publisher = delivery.NewLocalPublisher(cfg.Server.BaseURL)
	}
	log.Printf("Using delivery publisher: %s", publisher.Name())

	assembler := assemble.New(coverage.Catalog(), coverage.CharterCatalog())
	service := generator.NewService(assembler, stagingMgr, publisher)

	mux := http.NewServeMux()
	server.NewHandler(service, stagingMgr).Register(mux)

	// 定期清理过期的暂存目录
	go runCleanup(ctx, stagingMgr, cfg.Staging.CleanupAfter)

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Server.Port),
		Handler: mux,
	}

	go func() {
		log.Printf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
	log.Printf("Server stopped")
}

// runCleanup 每隔一个 TTL 周期清理一次过期会话目录
func runCleanup(ctx context.Context, mgr *staging.Manager, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleanupCtx := trace.NewContext(ctx, trace.NewTraceID(trace.CleanupPrefix))
			removed, err := mgr.CleanupExpired(cleanupCtx)
			if err != nil {
				trace.Error(cleanupCtx, "Staging cleanup failed: %v", err)
				continue
			}
			if removed > 0 {
				trace.Info(cleanupCtx, "Removed %d expired staging session(s)", removed)
			}
		}
	}
}
