package cbridge

import (
	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
)

//BridgeOptions collects the mappings handed to a bridge engine
type BridgeOptions struct {
	*Glogged
	outbound []*OutboundMapping
	inbound  []*InboundMapping
}

//NewBridgeOptions returns empty options
func NewBridgeOptions() *BridgeOptions {
	return &BridgeOptions{
		Glogged:  &Glogged{},
		outbound: make([]*OutboundMapping, 0),
		inbound:  make([]*InboundMapping, 0),
	}
}

//AddOutboundMapping adds a bus to endpoint mapping
func (opts *BridgeOptions) AddOutboundMapping(m *OutboundMapping) *BridgeOptions {
	opts.outbound = append(opts.outbound, m)
	return opts
}

//AddInboundMapping adds an endpoint to bus mapping
func (opts *BridgeOptions) AddInboundMapping(m *InboundMapping) *BridgeOptions {
	opts.inbound = append(opts.inbound, m)
	return opts
}

//OutboundMappings returns the outbound mappings in the order they were added
func (opts *BridgeOptions) OutboundMappings() []*OutboundMapping {
	out := make([]*OutboundMapping, len(opts.outbound))
	copy(out, opts.outbound)
	return out
}

//InboundMappings returns the inbound mappings in the order they were added
func (opts *BridgeOptions) InboundMappings() []*InboundMapping {
	in := make([]*InboundMapping, len(opts.inbound))
	copy(in, opts.inbound)
	return in
}

/*
	Validate checks that every mapping can be consumed by a bridge engine.
	A mapping needs an address and either a uri or an endpoint handle that resolves,
	outbound worker executors must resolve as well and an address can only be
	consumed by one outbound mapping.
	Setting a worker executor on a non blocking mapping is allowed, the engine ignores it.
	All problems are returned combined, nil resolvers skip the matching handle checks.
*/
func (opts *BridgeOptions) Validate(endpoints EndpointResolver, workers ExecutorResolver) error {
	var errs []error
	seen := make(map[string]bool)

	for _, m := range opts.outbound {
		if m == nil {
			errs = append(errs, errors.WithMessage(ErrInvalidMapping, "nil outbound mapping"))
			continue
		}
		if err := validateCommon(m, endpoints); err != nil {
			errs = append(errs, err)
		}
		if seen[m.Address()] {
			errs = append(errs, invalidMapping("address already consumed by another outbound mapping", m))
		}
		seen[m.Address()] = true

		if m.WorkerExecutor().IsZero() {
			continue
		}
		if workers != nil && !workers.Has(m.WorkerExecutor()) {
			errs = append(errs, invalidMapping("worker executor does not resolve", m))
		}
		if !m.IsBlocking() {
			opts.Log().WithFields(logrus.Fields{
				"address": m.Address(),
				"worker":  m.WorkerExecutor().String(),
			}).Warn("worker executor set on a non blocking mapping, it will not be used")
		}
	}

	for _, m := range opts.inbound {
		if m == nil {
			errs = append(errs, errors.WithMessage(ErrInvalidMapping, "nil inbound mapping"))
			continue
		}
		if err := validateCommon(m, endpoints); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Combine(errs...)
}

func validateCommon(m Mapping, endpoints EndpointResolver) error {
	if m.Address() == "" {
		return invalidMapping("missing address", m)
	}
	if m.URI() == "" && m.Endpoint().IsZero() {
		return invalidMapping("missing uri or endpoint", m)
	}
	if !m.Endpoint().IsZero() && endpoints != nil {
		if _, ok := endpoints.ResolveURI(m.Endpoint()); !ok {
			return invalidMapping("endpoint does not resolve", m)
		}
	}
	return nil
}

/*
	EffectiveExecutor returns the worker executor a bridge engine should run the mapping on.
	Non blocking mappings return the zero handle, blocking mappings return their own
	worker executor or the default one of the resolver.
*/
func EffectiveExecutor(m *OutboundMapping, workers ExecutorResolver) ExecutorRef {
	if !m.IsBlocking() {
		return ExecutorRef{}
	}
	if !m.WorkerExecutor().IsZero() {
		return m.WorkerExecutor()
	}
	if workers == nil {
		return ExecutorRef{}
	}
	return workers.Default()
}
