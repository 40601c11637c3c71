package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// Connector is a thin JSON client bound to a single base URL. Every
// failure it returns is an *APIError: server rejections carry the HTTP
// status, transport-level problems carry status 0. Callers never see a
// raw net/http error.
type Connector struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type ConnectorConfig struct {
	BaseURL string
	Logger  *zap.Logger
}

func NewConnector(config *ConnectorConfig, options ...HttpOpts) *Connector {
	return &Connector{
		baseURL:    config.BaseURL,
		httpClient: newClient(options...),
		logger:     config.Logger,
	}
}

type RequestOpt func(*requestConfig)

type requestConfig struct {
	headers     map[string]string
	overrideURL string
}

func WithHeader(key, value string) RequestOpt {
	return func(c *requestConfig) {
		if c.headers == nil {
			c.headers = make(map[string]string)
		}
		c.headers[key] = value
	}
}

// WithURL replaces baseURL+endpoint entirely. Used for endpoints that
// live outside the versioned API prefix, such as the health check.
func WithURL(url string) RequestOpt {
	return func(c *requestConfig) {
		c.overrideURL = url
	}
}

// DoRequest performs a JSON request and decodes the response into
// respBody (when non-nil). Query parameters are appended only when the
// caller supplies them; reqBody is marshalled as JSON with the matching
// Content-Type. On failure exactly one *APIError is returned.
func (c *Connector) DoRequest(ctx context.Context, method, endpoint string, query url.Values, reqBody, respBody any, opts ...RequestOpt) error {
	cfg := &requestConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	requestURL := c.baseURL + endpoint
	if cfg.overrideURL != "" {
		requestURL = cfg.overrideURL
	}
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			c.logger.Error("marshal request body", zap.Error(err))
			return newTransportError()
		}
		bodyReader = bytes.NewReader(jsonData)
		// Attach payload to context for the logging transport
		ctx = context.WithValue(ctx, payloadContextKey{}, jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		c.logger.Error("create request", zap.String("url", requestURL), zap.Error(err))
		return newTransportError()
	}

	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	for key, value := range cfg.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("url", requestURL),
			zap.Error(err),
		)
		return newTransportError()
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("read response body", zap.String("url", requestURL), zap.Error(err))
		return newTransportError()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalizeError(resp.StatusCode, bodyBytes)
	}

	if respBody != nil && len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, respBody); err != nil {
			c.logger.Warn("decode response body", zap.String("url", requestURL), zap.Error(err))
			return newTransportError()
		}
	}

	return nil
}
