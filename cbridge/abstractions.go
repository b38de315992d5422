package cbridge

import (
	"time"

	"github.com/sirupsen/logrus"
)

//Direction tells which way a mapping bridges messages
type Direction string

const (
	//Outbound mappings consume from a bus address and deliver to an endpoint
	Outbound Direction = "outbound"
	//Inbound mappings consume from an endpoint and deliver to a bus address
	Inbound Direction = "inbound"
)

//Mapping is the read surface a bridge engine consumes from every mapping
type Mapping interface {
	Direction() Direction
	Address() string
	URI() string
	Endpoint() EndpointRef
	IsHeadersCopy() bool
}

//EndpointResolver resolves endpoint handles held by mappings
type EndpointResolver interface {
	//ResolveURI returns the uri of the endpoint the handle points to
	ResolveURI(ref EndpointRef) (string, bool)
}

//EndpointRegistry resolves endpoint handles and registers endpoints by uri
type EndpointRegistry interface {
	EndpointResolver
	Register(uri string) (EndpointRef, error)
	Lookup(uri string) (EndpointRef, bool)
	Remove(ref EndpointRef) bool
}

//ExecutorResolver resolves worker executor handles held by mappings
type ExecutorResolver interface {
	//Has reports if the handle points to a live worker executor
	Has(ref ExecutorRef) bool
	/*
		Default returns the handle of the process wide worker executor used by blocking
		mappings that do not name one
	*/
	Default() ExecutorRef
}

//ExecutorInfo describes a worker executor without handing out the pool itself
type ExecutorInfo struct {
	Name           string
	PoolSize       uint
	MaxExecuteTime time.Duration
}

//Logged is implemented by structs that take part in the logging schema of the bridge
type Logged interface {
	SetLogger(entry logrus.FieldLogger)
	Log() logrus.FieldLogger
}

//Builder is the main interface that should be used to create validated BridgeOptions
type Builder interface {
	//WithLogger set custom logger instance
	WithLogger(logger logrus.FieldLogger) Builder
	//WithEndpoints sets the registry endpoint handles are resolved against, a nil registry means a fresh one
	WithEndpoints(endpoints EndpointRegistry) Builder
	//WithWorkers sets the registry worker executor handles are resolved against
	WithWorkers(workers ExecutorResolver) Builder
	/*
		ResolveURIs registers the uri of every mapping that has no endpoint handle
		with the endpoint registry and sets the returned handle on the mapping.
		Handles are only set once the build succeeds, a failed build removes the
		endpoints it registered.
	*/
	ResolveURIs() Builder
	//Outbound adds bus to endpoint mappings
	Outbound(mappings ...*OutboundMapping) Builder
	//Inbound adds endpoint to bus mappings
	Inbound(mappings ...*InboundMapping) Builder
	//Build validates the mappings and returns the options
	Build() (*BridgeOptions, error)
}
