package cbridge

import (
	"errors"
	"testing"
)

func TestFromVertxRejectsEmptyAddress(t *testing.T) {
	m, err := FromVertx("")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument but got %v", err)
	}
	if m != nil {
		t.Errorf("expected no mapping to be returned for an empty address")
	}
}

func TestMustFromVertxPanicsOnEmptyAddress(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected MustFromVertx to panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected the panic value to be ErrInvalidArgument but got %v", r)
		}
	}()
	MustFromVertx("")
}

func TestFromVertxDefaults(t *testing.T) {
	m, err := FromVertx("a")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if m.Address() != "a" {
		t.Errorf("expected address a but got %s", m.Address())
	}
	if m.IsBlocking() {
		t.Errorf("expected a new mapping not to be blocking")
	}
	if !m.WorkerExecutor().IsZero() {
		t.Errorf("expected a new mapping to have no worker executor")
	}
	if m.IsHeadersCopy() != DefaultHeadersCopy {
		t.Errorf("expected headers copy %v but got %v", DefaultHeadersCopy, m.IsHeadersCopy())
	}
	if m.URI() != "" || !m.Endpoint().IsZero() {
		t.Errorf("expected a new mapping to have no uri or endpoint")
	}
	if m.Direction() != Outbound {
		t.Errorf("expected direction %s but got %s", Outbound, m.Direction())
	}
}

func TestOutboundSettersReturnSameMapping(t *testing.T) {
	m := MustFromVertx("a")
	pool := NewExecutorRef()
	ep := NewEndpointRef()

	chained := []*OutboundMapping{
		m.SetAddress("b"),
		m.SetURI("jms:queue:q"),
		m.SetEndpoint(ep),
		m.SetHeadersCopy(true),
		m.ToCamel("jms:queue:q2"),
		m.ToCamelEndpoint(ep),
		m.WithoutHeadersCopy(),
		m.SetBlocking(true),
		m.SetWorkerExecutor(pool),
	}
	for i, got := range chained {
		if got != m {
			t.Errorf("setter #%d returned a different mapping", i)
		}
	}
}

func TestToCamelEqualsSetURI(t *testing.T) {
	for _, uri := range []string{"", "jms:queue:q", "amqp://localhost/vhost", "direct:x?a=b"} {
		viaAlias := MustFromVertx("a").ToCamel(uri)
		viaSetter := MustFromVertx("a").SetURI(uri)
		if *viaAlias != *viaSetter {
			t.Errorf("ToCamel(%q) and SetURI(%q) resulted in different mappings", uri, uri)
		}
	}

	ep := NewEndpointRef()
	if *MustFromVertx("a").ToCamelEndpoint(ep) != *MustFromVertx("a").SetEndpoint(ep) {
		t.Errorf("ToCamelEndpoint and SetEndpoint resulted in different mappings")
	}
}

func TestWithoutHeadersCopy(t *testing.T) {
	for _, prior := range []bool{true, false} {
		m := MustFromVertx("a").SetHeadersCopy(prior).WithoutHeadersCopy()
		if m.IsHeadersCopy() {
			t.Errorf("expected headers copy to be disabled when it was %v before", prior)
		}
	}
}

func TestOutboundScenario(t *testing.T) {
	pool1 := NewExecutorRef()
	m := MustFromVertx("orders").ToCamel("external://queue1").SetBlocking(true).SetWorkerExecutor(pool1)

	if m.Address() != "orders" {
		t.Errorf("expected address orders but got %s", m.Address())
	}
	if m.URI() != "external://queue1" {
		t.Errorf("expected uri external://queue1 but got %s", m.URI())
	}
	if !m.IsBlocking() {
		t.Errorf("expected the mapping to be blocking")
	}
	if m.WorkerExecutor() != pool1 {
		t.Errorf("expected worker executor %s but got %s", pool1, m.WorkerExecutor())
	}
}

func TestWorkerWithoutBlockingIsAccepted(t *testing.T) {
	pool := NewExecutorRef()
	m := MustFromVertx("a").SetWorkerExecutor(pool)
	if m.IsBlocking() {
		t.Errorf("setting a worker executor must not make the mapping blocking")
	}
	if m.WorkerExecutor() != pool {
		t.Errorf("expected the worker executor to be kept")
	}
}
