package langflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/skillsenselab/langflow-gateway/logger"
	"github.com/skillsenselab/langflow-gateway/observability"
	"github.com/skillsenselab/langflow-gateway/resilience"
	"github.com/skillsenselab/langflow-gateway/util"
	"github.com/skillsenselab/langflow-gateway/validation"
)

const (
	flowsPath = "/api/v1/flows/"
	runPath   = "/api/v1/run/"

	// inputPreviewLen bounds logged user input.
	inputPreviewLen = 100
)

// Client talks to one Langflow instance over a pooled HTTP connection.
// It is scoped to a single logical session: pair New with a deferred Close.
type Client struct {
	cfg     Config
	log     *logger.Logger
	metrics *observability.UpstreamMetrics

	// backoffUnit is the base retry wait. One second in production;
	// tests shrink it.
	backoffUnit time.Duration

	mu         sync.Mutex
	httpClient *http.Client
	closeOnce  sync.Once
}

// Option customizes a Client.
type Option func(*Client)

// WithUpstreamMetrics attaches metric instruments for upstream calls.
func WithUpstreamMetrics(m *observability.UpstreamMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger overrides the component logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Client for the configured Langflow instance. The connection
// pool is created lazily on first use.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:         cfg,
		log:         logger.WithComponent("langflow"),
		backoffUnit: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.log.Debug("Langflow client created", logger.Fields(
		logger.FieldURL, cfg.BaseURL,
		"timeout", cfg.Timeout.String(),
		"max_retries", cfg.MaxRetries,
		"api_key", util.MaskSecret(cfg.APIKey, 4),
	))
	return c, nil
}

// Close releases the connection pool. It is safe to call on every exit path;
// only the first call has any effect.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		hc := c.httpClient
		c.mu.Unlock()
		if hc != nil {
			hc.CloseIdleConnections()
		}
	})
}

// pool returns the lazily-created HTTP client backing this session.
func (c *Client) pool() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.MaxConnsPerHost = maxConnsPerHost
		transport.MaxIdleConnsPerHost = maxIdleConnsPerHost
		c.httpClient = &http.Client{
			Transport: transport,
			Timeout:   c.cfg.Timeout,
		}
	}
	return c.httpClient
}

// response is the raw outcome of a successful upstream request.
type response struct {
	StatusCode int
	Body       []byte
}

// GetFlows fetches all flows from the Langflow instance.
//
// The upstream response may be a bare JSON array or an object with a "flows"
// key; any other shape is a fatal *ServiceError. Records failing validation
// are logged and skipped, so one malformed record never fails the call.
// Output order matches upstream order. All failures propagate as
// *ServiceError.
func (c *Client) GetFlows(ctx context.Context) ([]Flow, error) {
	ctx, span := observability.StartSpan(ctx, "langflow.get_flows")
	defer span.End()

	query := url.Values{}
	query.Set("header_flows", "true")
	query.Set("get_all", "true")

	c.log.Info("Fetching flows", logger.Fields(logger.FieldURL, c.cfg.BaseURL+flowsPath))

	resp, err := c.requestWithRetry(ctx, http.MethodGet, flowsPath, query, nil, nil)
	if err != nil {
		observability.SetSpanError(ctx, err)
		if IsServiceError(err) {
			return nil, err
		}
		return nil, NewServiceError(err, "failed to fetch flows: %v", err)
	}

	records, err := splitFlowRecords(resp.Body)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}

	flows := make([]Flow, 0, len(records))
	for _, record := range records {
		var flow Flow
		if err := json.Unmarshal(record, &flow); err != nil {
			c.log.Warn("Skipping malformed flow record", logger.Fields(logger.FieldError, err.Error()))
			continue
		}
		if err := validation.Validate(flow); err != nil {
			c.log.Warn("Skipping invalid flow record", logger.Fields(
				logger.FieldFlowID, flow.ID,
				logger.FieldError, err.Error(),
			))
			continue
		}
		flows = append(flows, flow)
	}

	c.log.Info("Fetched flows", logger.Fields("count", len(flows)))
	return flows, nil
}

// splitFlowRecords normalizes the two accepted listing shapes into a slice
// of raw records.
func splitFlowRecords(body []byte) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err == nil && records != nil {
		return records, nil
	}

	var wrapper struct {
		Flows []json.RawMessage `json:"flows"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Flows != nil {
		return wrapper.Flows, nil
	}

	return nil, NewServiceError(nil, "unexpected flows response shape")
}

// ExecuteFlow runs the identified flow with the given request.
//
// ExecuteFlow never returns an error: every failure, transport or otherwise,
// is folded into the returned ExecutionResult. This is intentionally
// asymmetric with GetFlows (listing is fail-fast, execution is fail-soft);
// do not change one to match the other. Callers depend on execution
// failures arriving as data.
func (c *Client) ExecuteFlow(ctx context.Context, flowID string, req ExecutionRequest) ExecutionResult {
	ctx, span := observability.StartSpan(ctx, "langflow.execute_flow")
	defer span.End()

	c.log.Info("Executing flow", logger.Fields(
		logger.FieldFlowID, flowID,
		"input_preview", util.Truncate(req.InputValue, inputPreviewLen),
	))

	headers := map[string]string{"Content-Type": "application/json"}
	resp, err := c.requestWithRetry(ctx, http.MethodPost, runPath+flowID, nil, req, headers)
	if err != nil {
		observability.SetSpanError(ctx, err)
		c.log.WithError(err).Error("Flow execution failed", logger.Fields(logger.FieldFlowID, flowID))
		return ExecutionResult{Success: false, Error: err.Error()}
	}

	// The body must be valid JSON to echo back as the result payload.
	var payload json.RawMessage
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		observability.SetSpanError(ctx, err)
		msg := fmt.Sprintf("unexpected error during flow execution: %v", err)
		c.log.Error("Flow execution returned a non-JSON body", logger.Fields(
			logger.FieldFlowID, flowID,
			logger.FieldError, err.Error(),
		))
		return ExecutionResult{Success: false, Error: msg}
	}

	c.log.Info("Executed flow", logger.Fields(logger.FieldFlowID, flowID))
	return ExecutionResult{Success: true, Result: payload}
}

// requestWithRetry performs one upstream request with the retry policy:
// up to MaxRetries+1 attempts, waiting backoffUnit*2^n between retryable
// failures. The returned error is always a *ServiceError.
func (c *Client) requestWithRetry(ctx context.Context, method, path string, query url.Values, body any, headers map[string]string) (*response, error) {
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, NewServiceError(err, "encode request body: %v", err)
		}
	}

	attempts := c.cfg.MaxRetries + 1
	start := time.Now()

	cfg := resilience.RetryConfig{
		MaxRetries:  c.cfg.MaxRetries,
		BackoffUnit: c.backoffUnit,
		RetryIf:     IsRetryable,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			if c.metrics != nil {
				c.metrics.RecordRetry(ctx, method, path)
			}
			c.log.Warn("Request failed, retrying", logger.Fields(
				logger.FieldAttempt, fmt.Sprintf("%d/%d", attempt+1, attempts),
				logger.FieldURL, c.cfg.BaseURL+path,
				"backoff", backoff.String(),
				logger.FieldError, err.Error(),
			))
		},
	}

	resp, err := resilience.Retry(ctx, cfg, func() (*response, error) {
		return c.doAttempt(ctx, method, path, query, encoded, headers)
	})

	if c.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		c.metrics.RecordRequest(ctx, method, path, status, time.Since(start))
	}

	if err == nil {
		return resp, nil
	}

	var attemptErr *Error
	switch {
	case IsServiceError(err):
		return nil, err
	case errors.As(err, &attemptErr) && !attemptErr.Retryable:
		// Non-retryable status: a single attempt was made.
		if attemptErr.StatusCode >= 400 && attemptErr.StatusCode < 500 {
			return nil, NewServiceError(err, "client error %d: %s", attemptErr.StatusCode, attemptErr.Body)
		}
		return nil, NewServiceError(err, "unexpected status %d: %s", attemptErr.StatusCode, attemptErr.Body)
	case ctx.Err() != nil:
		// Only the caller's context decides cancellation. A per-attempt
		// client timeout also satisfies errors.Is(err,
		// context.DeadlineExceeded), so matching on the error here would
		// swallow exhausted-timeout failures.
		return nil, NewServiceError(err, "request cancelled: %v", err)
	default:
		msg := fmt.Sprintf("request failed after %d attempts: %v", attempts, err)
		c.log.Error(msg)
		return nil, NewServiceError(err, "%s", msg)
	}
}

// doAttempt executes a single request attempt and classifies its failure.
func (c *Client) doAttempt(ctx context.Context, method, path string, query url.Values, body []byte, headers map[string]string) (*response, error) {
	u := c.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, NewServiceError(err, "create request: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("x-api-key", c.cfg.APIKey)
	}

	resp, err := c.pool().Do(req)
	if err != nil {
		var ne net.Error
		if (errors.As(err, &ne) && ne.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, respBody); classErr != nil {
		return nil, classErr
	}

	return &response{StatusCode: resp.StatusCode, Body: respBody}, nil
}
