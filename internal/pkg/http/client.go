package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/tapea/backoffice/internal/pkg/circuitbreaker"
	"github.com/tapea/backoffice/internal/pkg/logger"
	"github.com/tapea/backoffice/internal/pkg/models"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader is the header name for the internal API key
	APIKeyHeader = "X-API-Key"
)

// APIKeyClient is an HTTP client for service-to-service calls. It sends
// the caller's API key and protects the target with a circuit breaker.
type APIKeyClient struct {
	client      *nethttp.Client
	breaker     *circuitbreaker.CircuitBreaker
	apiKey      string
	baseURL     string
	serviceName string
}

// NewAPIKeyClient creates a client identified as serviceName, talking to baseURL
func NewAPIKeyClient(config *models.APIKeyConfig, serviceName, baseURL string, zl *logger.ZapLogger) *APIKeyClient {
	var apiKey string
	switch serviceName {
	case "orders-service":
		apiKey = config.OrdersService
	case "billing-service":
		apiKey = config.BillingService
	case "fleet-service":
		apiKey = config.FleetService
	default:
		logger.Warn("Unknown service name for API key", logger.String("service", serviceName))
	}

	return &APIKeyClient{
		client:      &nethttp.Client{Timeout: DefaultTimeout},
		breaker:     circuitbreaker.New(circuitbreaker.DefaultConfig(serviceName+"->"+baseURL), zl),
		apiKey:      apiKey,
		baseURL:     baseURL,
		serviceName: serviceName,
	}
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *APIKeyClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		resp, err := c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
		}
		if result != nil {
			return json.NewDecoder(resp.Body).Decode(result)
		}
		return nil
	})
}

// PostJSON performs a POST request with a JSON body and decodes the response
func (c *APIKeyClient) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		resp, err := c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
		}
		if result != nil {
			return json.NewDecoder(resp.Body).Decode(result)
		}
		return nil
	})
}

func (c *APIKeyClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status_code", resp.StatusCode))

	return resp, nil
}
