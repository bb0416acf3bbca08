package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/skillsenselab/langflow-gateway/langflow"
	"github.com/skillsenselab/langflow-gateway/logger"
)

func TestServer_StartAndStop(t *testing.T) {
	cfg := Config{Host: "127.0.0.1", Port: 0}
	cfg.ApplyDefaults()
	cfg.Port = 0 // ephemeral port for the test

	srv := NewServer(cfg, logger.NewWithWriter(io.Discard, "test"))
	srv.ApplyMiddleware()
	NewHandler(langflow.Config{BaseURL: "http://localhost:7860"}).Register(srv.GinEngine())

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer srv.Stop(ctx)

	resp, err := http.Get(fmt.Sprintf("http://%s/", srv.Addr()))
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header on the response")
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Langflow Integration API") {
		t.Errorf("unexpected body: %s", body)
	}

	if err := srv.Stop(ctx); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}
