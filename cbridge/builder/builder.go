package builder

import (
	"reflect"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"

	"github.com/wework/cbridge/cbridge"
	"github.com/wework/cbridge/cbridge/endpoint"
	"github.com/wework/cbridge/cbridge/metrics"
	"github.com/wework/cbridge/cbridge/worker"
)

type defaultBuilder struct {
	logger      logrus.FieldLogger
	endpoints   cbridge.EndpointRegistry
	workers     cbridge.ExecutorResolver
	resolveURIs bool
	outbound    []*cbridge.OutboundMapping
	inbound     []*cbridge.InboundMapping
}

func (builder *defaultBuilder) Build() (*cbridge.BridgeOptions, error) {
	opts := cbridge.NewBridgeOptions()
	if builder.logger != nil {
		opts.SetLogger(builder.logger)
	}
	if isNilRegistry(builder.endpoints) {
		builder.endpoints = endpoint.NewRegistry()
	}
	if isNilRegistry(builder.workers) {
		builder.workers = worker.NewRegistry()
	}

	for _, m := range builder.outbound {
		opts.AddOutboundMapping(m)
	}
	for _, m := range builder.inbound {
		opts.AddInboundMapping(m)
	}

	var res *resolution
	if builder.resolveURIs {
		var err error
		if res, err = builder.resolve(); err != nil {
			opts.Log().WithError(err).Error("failed resolving mapping uris")
			metrics.ReportRejectedMappings()
			return nil, err
		}
	}

	if err := opts.Validate(builder.endpoints, builder.workers); err != nil {
		opts.Log().WithError(err).Error("bridge options failed validation")
		if res != nil {
			res.rollback(builder.endpoints)
		}
		metrics.ReportRejectedMappings()
		return nil, err
	}

	if res != nil {
		res.apply()
	}
	builder.report()
	opts.Log().WithFields(logrus.Fields{
		"outbound": len(builder.outbound),
		"inbound":  len(builder.inbound),
	}).Info("bridge options built")
	return opts, nil
}

//resolution holds the endpoint handles of a build until it succeeds
type resolution struct {
	setters []func()
	created []cbridge.EndpointRef
}

func (res *resolution) apply() {
	for _, set := range res.setters {
		set()
	}
}

func (res *resolution) rollback(endpoints cbridge.EndpointRegistry) {
	for _, ref := range res.created {
		endpoints.Remove(ref)
	}
}

func (builder *defaultBuilder) register(res *resolution, m cbridge.Mapping) (cbridge.EndpointRef, error) {
	_, existed := builder.endpoints.Lookup(m.URI())
	ref, err := builder.endpoints.Register(m.URI())
	if err != nil {
		return ref, errors.WithDetails(
			errors.WithMessage(cbridge.ErrInvalidMapping, err.Error()),
			"direction", string(m.Direction()),
			"address", m.Address(),
			"uri", m.URI())
	}
	if !existed {
		res.created = append(res.created, ref)
	}
	return ref, nil
}

/*
	resolve registers the uri of every mapping without an endpoint handle.
	Mappings are left untouched, the handles are set by resolution.apply and
	the endpoints registered here are removed again when any registration fails.
*/
func (builder *defaultBuilder) resolve() (*resolution, error) {
	res := &resolution{}
	var errs []error
	for _, m := range builder.outbound {
		if m == nil || m.URI() == "" || !m.Endpoint().IsZero() {
			continue
		}
		ref, err := builder.register(res, m)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pinned := m
		res.setters = append(res.setters, func() { pinned.SetEndpoint(ref) })
	}
	for _, m := range builder.inbound {
		if m == nil || m.URI() == "" || !m.Endpoint().IsZero() {
			continue
		}
		ref, err := builder.register(res, m)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pinned := m
		res.setters = append(res.setters, func() { pinned.SetEndpoint(ref) })
	}
	if err := errors.Combine(errs...); err != nil {
		res.rollback(builder.endpoints)
		return nil, err
	}
	return res, nil
}

//isNilRegistry reports nil interfaces as well as interfaces holding a nil pointer
func isNilRegistry(registry interface{}) bool {
	if registry == nil {
		return true
	}
	v := reflect.ValueOf(registry)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func (builder *defaultBuilder) report() {
	var blocking, nonBlocking int
	for _, m := range builder.outbound {
		if m.IsBlocking() {
			blocking++
		} else {
			nonBlocking++
		}
	}
	metrics.ReportMappings(string(cbridge.Outbound), true, blocking)
	metrics.ReportMappings(string(cbridge.Outbound), false, nonBlocking)
	metrics.ReportMappings(string(cbridge.Inbound), false, len(builder.inbound))
}

func (builder *defaultBuilder) WithLogger(logger logrus.FieldLogger) cbridge.Builder {
	builder.logger = logger
	return builder
}

func (builder *defaultBuilder) WithEndpoints(endpoints cbridge.EndpointRegistry) cbridge.Builder {
	builder.endpoints = endpoints
	return builder
}

func (builder *defaultBuilder) WithWorkers(workers cbridge.ExecutorResolver) cbridge.Builder {
	builder.workers = workers
	return builder
}

func (builder *defaultBuilder) ResolveURIs() cbridge.Builder {
	builder.resolveURIs = true
	return builder
}

func (builder *defaultBuilder) Outbound(mappings ...*cbridge.OutboundMapping) cbridge.Builder {
	builder.outbound = append(builder.outbound, mappings...)
	return builder
}

func (builder *defaultBuilder) Inbound(mappings ...*cbridge.InboundMapping) cbridge.Builder {
	builder.inbound = append(builder.inbound, mappings...)
	return builder
}

//New :)
func New() Nu {
	return Nu{}
}

//Nu is the new New
type Nu struct {
}

//Bridge inits a new bridge options builder
func (Nu) Bridge() cbridge.Builder {
	return &defaultBuilder{
		outbound: make([]*cbridge.OutboundMapping, 0),
		inbound:  make([]*cbridge.InboundMapping, 0)}
}
