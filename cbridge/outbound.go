package cbridge

var _ Mapping = &OutboundMapping{}

/*
	OutboundMapping maps an event bus address to an endpoint.
	Every setter returns the mapping it was called on so calls can be chained.
	An OutboundMapping is a plain value under construction and must not be mutated
	from more than one goroutine.
*/
type OutboundMapping struct {
	CamelMapping
	blocking bool
	worker   ExecutorRef
}

//FromVertx creates an OutboundMapping consuming from the given bus address
func FromVertx(address string) (*OutboundMapping, error) {
	if address == "" {
		return nil, invalidArgument("address", Outbound)
	}
	m := &OutboundMapping{CamelMapping: newCamelMapping()}
	return m.SetAddress(address), nil
}

//MustFromVertx is like FromVertx but panics when the address is missing
func MustFromVertx(address string) *OutboundMapping {
	m, err := FromVertx(address)
	if err != nil {
		panic(err)
	}
	return m
}

//Direction implements Mapping
func (m *OutboundMapping) Direction() Direction {
	return Outbound
}

//SetAddress sets the bus address consumed by the mapping
func (m *OutboundMapping) SetAddress(address string) *OutboundMapping {
	m.setAddress(address)
	return m
}

//SetHeadersCopy sets whether message headers are copied to the endpoint call
func (m *OutboundMapping) SetHeadersCopy(copyHeaders bool) *OutboundMapping {
	m.setHeadersCopy(copyHeaders)
	return m
}

//SetURI sets the uri of the target endpoint
func (m *OutboundMapping) SetURI(uri string) *OutboundMapping {
	m.setURI(uri)
	return m
}

//SetEndpoint sets the handle of the target endpoint
func (m *OutboundMapping) SetEndpoint(endpoint EndpointRef) *OutboundMapping {
	m.setEndpoint(endpoint)
	return m
}

//ToCamel is the fluent version of SetURI
func (m *OutboundMapping) ToCamel(uri string) *OutboundMapping {
	return m.SetURI(uri)
}

//ToCamelEndpoint is the fluent version of SetEndpoint
func (m *OutboundMapping) ToCamelEndpoint(endpoint EndpointRef) *OutboundMapping {
	return m.SetEndpoint(endpoint)
}

//WithoutHeadersCopy disables the headers copy
func (m *OutboundMapping) WithoutHeadersCopy() *OutboundMapping {
	return m.SetHeadersCopy(false)
}

//IsBlocking reports if the processing is blocking and must not run on a latency sensitive goroutine
func (m *OutboundMapping) IsBlocking() bool {
	return m.blocking
}

//SetBlocking sets whether the processing is blocking, false by default
func (m *OutboundMapping) SetBlocking(blocking bool) *OutboundMapping {
	m.blocking = blocking
	return m
}

/*
	WorkerExecutor returns the worker executor the blocking processing runs on.
	It is only used when blocking is set, the zero value means the default worker executor.
*/
func (m *OutboundMapping) WorkerExecutor() ExecutorRef {
	return m.worker
}

//SetWorkerExecutor sets the worker executor used for blocking processing, the mapping does not own it
func (m *OutboundMapping) SetWorkerExecutor(pool ExecutorRef) *OutboundMapping {
	m.worker = pool
	return m
}
