package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wework/cbridge/cbridge/endpoint"
	"github.com/wework/cbridge/cbridge/worker"
)

const sample = `
log:
  level: debug
  format: json
resolve_uris: true
workers:
  - name: slow
    pool_size: 4
    max_execute_time: 30s
outbound:
  - address: orders
    uri: jms:queue:orders
  - address: audit
    uri: jms:queue:audit
    headers_copy: false
    blocking: true
    worker: slow
inbound:
  - uri: jms:queue:payments
    address: payments
    publish: true
    body_type: string
`

func TestParseAndApply(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(cfg.Workers) != 1 || cfg.Workers[0].MaxExecuteTime != 30*time.Second {
		t.Errorf("unexpected workers %+v", cfg.Workers)
	}

	endpoints, workers := endpoint.NewRegistry(), worker.NewRegistry()
	b, err := cfg.Apply(endpoints, workers)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	opts, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	out := opts.OutboundMappings()
	if len(out) != 2 {
		t.Fatalf("expected 2 outbound mappings but got %d", len(out))
	}
	if !out[0].IsHeadersCopy() || out[0].IsBlocking() {
		t.Errorf("expected the first mapping to keep the defaults")
	}
	slow, _ := workers.Lookup("slow")
	if out[1].IsHeadersCopy() || !out[1].IsBlocking() || out[1].WorkerExecutor() != slow {
		t.Errorf("expected the second mapping to be blocking on the slow worker without headers copy")
	}
	if endpoints.Len() != 3 {
		t.Errorf("expected every uri to be registered as an endpoint, got %d", endpoints.Len())
	}

	in := opts.InboundMappings()
	if len(in) != 1 || in[0].Address() != "payments" || !in[0].IsPublish() || in[0].BodyType() != "string" {
		t.Errorf("unexpected inbound mappings")
	}
}

func TestApplyRejectsUnknownWorker(t *testing.T) {
	cfg, _ := Parse([]byte("outbound:\n  - address: a\n    uri: x:y\n    worker: missing\n"))
	if _, err := cfg.Apply(endpoint.NewRegistry(), worker.NewRegistry()); err == nil {
		t.Errorf("expected an unknown worker name to be rejected")
	}
}

func TestApplyRejectsMissingAddress(t *testing.T) {
	cfg, _ := Parse([]byte("outbound:\n  - uri: x:y\n"))
	if _, err := cfg.Apply(endpoint.NewRegistry(), worker.NewRegistry()); err == nil {
		t.Errorf("expected an outbound mapping without address to be rejected")
	}
}

func TestNewLogger(t *testing.T) {
	cfg, _ := Parse([]byte(sample))
	logger, err := cfg.NewLogger()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level but got %s", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("expected a json formatter")
	}

	defaults, _ := Parse([]byte(""))
	if defaults.Log.Level != "info" || defaults.Log.Format != "text" {
		t.Errorf("expected log defaults, got %+v", defaults.Log)
	}

	bad := &Config{Log: LogConfig{Level: "info", Format: "xml"}}
	if _, err := bad.NewLogger(); err == nil {
		t.Errorf("expected an unknown format to be rejected")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cbridge.yaml")
	if err := os.WriteFile(path, []byte(sample), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(cfg.Outbound) != 2 || len(cfg.Inbound) != 1 {
		t.Errorf("unexpected mappings loaded")
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected a missing file to fail")
	}
}
