package gateway

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/langflow-gateway/langflow"
	"github.com/skillsenselab/langflow-gateway/logger"
	"github.com/skillsenselab/langflow-gateway/observability"
	"github.com/skillsenselab/langflow-gateway/validation"
)

// defaultTestFlowID is the fixed flow exercised by POST /test-flow.
const defaultTestFlowID = "de90b072-14d5-4983-b9ac-85156fef9bb4"

// probeSampleSize bounds the sample returned by the connectivity probe.
const probeSampleSize = 3

// Handler serves the gateway routes. Each request opens one client session
// against the Langflow instance and closes it on every exit path.
type Handler struct {
	clientCfg  langflow.Config
	metrics    *observability.UpstreamMetrics
	testFlowID string
	log        *logger.Logger
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithUpstreamMetrics attaches metric instruments passed through to clients.
func WithUpstreamMetrics(m *observability.UpstreamMetrics) HandlerOption {
	return func(h *Handler) { h.metrics = m }
}

// WithTestFlowID overrides the fixed flow id used by POST /test-flow.
func WithTestFlowID(id string) HandlerOption {
	return func(h *Handler) { h.testFlowID = id }
}

// NewHandler creates a Handler that builds clients from cfg.
func NewHandler(cfg langflow.Config, opts ...HandlerOption) *Handler {
	h := &Handler{
		clientCfg:  cfg,
		testFlowID: defaultTestFlowID,
		log:        logger.WithComponent("gateway"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts all gateway routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.root)
	r.GET("/flows", h.listFlows)
	r.POST("/flows/:flowID/execute", h.executeFlow)
	r.POST("/test-flow", h.testFlow)
	r.GET("/test-langflow", h.probe)
}

// newClient opens a client session for one request lifecycle.
func (h *Handler) newClient() (*langflow.Client, error) {
	return langflow.New(h.clientCfg, langflow.WithUpstreamMetrics(h.metrics))
}

// executeRequest is the inbound body for the execution endpoints.
type executeRequest struct {
	InputValue string         `json:"input_value" validate:"required"`
	Tweaks     map[string]any `json:"tweaks"`
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Langflow Integration API"})
}

func (h *Handler) listFlows(c *gin.Context) {
	client, err := h.newClient()
	if err != nil {
		respondError(c, err)
		return
	}
	defer client.Close()

	flows, err := client.GetFlows(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"flows": flows})
}

func (h *Handler) executeFlow(c *gin.Context) {
	req, ok := bindExecuteRequest(c)
	if !ok {
		return
	}

	client, err := h.newClient()
	if err != nil {
		respondError(c, err)
		return
	}
	defer client.Close()

	result := client.ExecuteFlow(c.Request.Context(), c.Param("flowID"), langflow.NewExecutionRequest(req.InputValue, req.Tweaks))
	c.JSON(http.StatusOK, result)
}

func (h *Handler) testFlow(c *gin.Context) {
	req, ok := bindExecuteRequest(c)
	if !ok {
		return
	}

	client, err := h.newClient()
	if err != nil {
		respondError(c, err)
		return
	}
	defer client.Close()

	result := client.ExecuteFlow(c.Request.Context(), h.testFlowID, langflow.NewExecutionRequest(req.InputValue, req.Tweaks))
	c.JSON(http.StatusOK, gin.H{
		"flow_id":          h.testFlowID,
		"execution_result": result,
	})
}

func (h *Handler) probe(c *gin.Context) {
	client, err := h.newClient()
	if err != nil {
		respondError(c, err)
		return
	}
	defer client.Close()

	flows, err := client.GetFlows(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	samples := make([]gin.H, 0, probeSampleSize)
	for _, flow := range flows {
		if len(samples) == probeSampleSize {
			break
		}
		samples = append(samples, gin.H{"id": flow.ID, "name": flow.Name})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      fmt.Sprintf("Successfully connected to Langflow. Found %d flows.", len(flows)),
		"flows_count":  len(flows),
		"sample_flows": samples,
	})
}

// bindExecuteRequest decodes and validates the execution body, answering
// 400 itself when the body is unusable.
func bindExecuteRequest(c *gin.Context) (executeRequest, bool) {
	var req executeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Invalid request body: %v", err)})
		return req, false
	}
	if err := validation.Validate(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return req, false
	}
	return req, true
}

// respondError translates failures at the boundary: ServiceError means the
// upstream is unavailable (503), anything else is an internal error (500).
// Both preserve the original message for diagnostics.
func respondError(c *gin.Context, err error) {
	if langflow.IsServiceError(err) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"detail": fmt.Sprintf("Langflow service error: %v", err),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": fmt.Sprintf("Unexpected error: %v", err),
	})
}
