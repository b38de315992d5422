package cbridge

import (
	"github.com/rs/xid"
)

/*
	EndpointRef is a non owning handle to an endpoint held by an external registry.
	Mappings keep the handle only, disposing the endpoint is the registry's business
	and a stale handle simply fails to resolve.
*/
type EndpointRef struct {
	id string
}

//NewEndpointRef allocates a fresh endpoint handle, intended to be called by registries
func NewEndpointRef() EndpointRef {
	return EndpointRef{id: xid.New().String()}
}

//IsZero reports if the handle is unset
func (ref EndpointRef) IsZero() bool {
	return ref.id == ""
}

func (ref EndpointRef) String() string {
	return ref.id
}

//ExecutorRef is a non owning handle to a shared worker executor held by an external registry
type ExecutorRef struct {
	id string
}

//NewExecutorRef allocates a fresh executor handle, intended to be called by registries
func NewExecutorRef() ExecutorRef {
	return ExecutorRef{id: xid.New().String()}
}

//IsZero reports if the handle is unset
func (ref ExecutorRef) IsZero() bool {
	return ref.id == ""
}

func (ref ExecutorRef) String() string {
	return ref.id
}
