package pg

import (
	"os"
	"testing"

	"github.com/wework/cbridge/cbridge"
	"github.com/wework/cbridge/cbridge/endpoint"
	"github.com/wework/cbridge/cbridge/worker"
)

func sampleOptions(t *testing.T) (*cbridge.BridgeOptions, *endpoint.Registry, *worker.Registry) {
	endpoints, workers := endpoint.NewRegistry(), worker.NewRegistry()
	slow, _ := workers.Create("slow", 2, 0)
	audit, err := endpoints.Register("jms:queue:audit")
	if err != nil {
		t.Fatal(err)
	}
	in, _ := cbridge.FromCamel("jms:queue:payments")

	opts := cbridge.NewBridgeOptions().
		AddOutboundMapping(cbridge.MustFromVertx("orders").ToCamel("jms:queue:orders").SetBlocking(true)).
		AddOutboundMapping(cbridge.MustFromVertx("audit").ToCamelEndpoint(audit).SetBlocking(true).SetWorkerExecutor(slow).WithoutHeadersCopy()).
		AddInboundMapping(in.ToVertx("payments").UsePublish().WithBodyType("string"))
	return opts, endpoints, workers
}

func TestDefinitionsFromOptions(t *testing.T) {
	opts, endpoints, workers := sampleOptions(t)
	defs := DefinitionsFromOptions(opts, endpoints, workers)
	if len(defs) != 3 {
		t.Fatalf("expected 3 definitions but got %d", len(defs))
	}

	if defs[0].Worker != "" || !defs[0].Blocking {
		t.Errorf("a blocking mapping without worker should be stored without worker name, got %+v", defs[0])
	}
	if defs[1].URI != "jms:queue:audit" || defs[1].Worker != "slow" || defs[1].HeadersCopy {
		t.Errorf("expected handles to be replaced by uri and worker name, got %+v", defs[1])
	}
	if defs[2].Direction != cbridge.Inbound || !defs[2].Publish || defs[2].BodyType != "string" {
		t.Errorf("unexpected inbound definition %+v", defs[2])
	}
}

func TestToConfigRoundTrip(t *testing.T) {
	opts, endpoints, workers := sampleOptions(t)
	cfg := ToConfig(DefinitionsFromOptions(opts, endpoints, workers))

	if len(cfg.Workers) != 1 || cfg.Workers[0].Name != "slow" {
		t.Errorf("expected the slow worker to be declared, got %+v", cfg.Workers)
	}

	b, err := cfg.Apply(endpoint.NewRegistry(), worker.NewRegistry())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	rebuilt, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	out := rebuilt.OutboundMappings()
	if len(out) != 2 || out[1].URI() != "jms:queue:audit" || out[1].IsHeadersCopy() || out[1].WorkerExecutor().IsZero() {
		t.Errorf("rebuilt mappings do not match the stored ones")
	}
}

func TestMappingStore(t *testing.T) {
	connStr := os.Getenv("CBRIDGE_PG_CONN")
	if connStr == "" {
		t.Skip("CBRIDGE_PG_CONN not set")
	}
	provider, err := NewTxProvider(connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer provider.Dispose()

	store := NewMappingStore("cbridge-tests", provider)
	if err := store.EnsureSchema(); err != nil {
		t.Fatal(err)
	}
	defer store.Purge()

	opts, endpoints, workers := sampleOptions(t)
	defs := DefinitionsFromOptions(opts, endpoints, workers)

	tx, err := provider.New()
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(tx, defs); err != nil {
		_ = tx.Rollback()
		t.Fatal(err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatal(err)
	}

	tx, err = provider.New()
	if err != nil {
		t.Fatal(err)
	}
	defer tx.Rollback()
	loaded, err := store.Load(tx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != len(defs) {
		t.Fatalf("expected %d definitions but loaded %d", len(defs), len(loaded))
	}
	for i := range defs {
		if loaded[i] != defs[i] {
			t.Errorf("definition #%d differs: saved %+v loaded %+v", i, defs[i], loaded[i])
		}
	}
}
