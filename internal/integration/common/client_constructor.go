package common

import (
	"github.com/fridgechef/recipe-client/internal/config"
	pkgHTTP "github.com/fridgechef/recipe-client/pkg/http"
	"go.uber.org/zap"
)

// NewBaseConnector builds the shared JSON connector with the standard
// transport stack: request IDs, debug logging, and client metrics.
func NewBaseConnector(baseURL string, cfg config.HTTPClientConfig, logger *zap.Logger) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: baseURL,
	}

	return pkgHTTP.NewConnector(
		connCfg,
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestID(),
		pkgHTTP.WithRequestLogging(),
		pkgHTTP.WithClientMetrics(),
	)
}
