package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fridgechef/recipe-client/internal/config"
	"github.com/fridgechef/recipe-client/internal/pkg/logger"
	"github.com/fridgechef/recipe-client/internal/stubserver"
	"go.uber.org/zap"
)

// Build wires the stub server: config -> logger -> handlers -> router.
func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building stub server",
		zap.String("addr", cfg.StubAddr),
	)

	handler := stubserver.NewHandler(log)
	router := stubserver.SetupRouter(handler, log)
	log.Info("HTTP router configured")

	server := &http.Server{
		Addr:         cfg.StubAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		server: server,
		logger: log,
	}, nil
}
