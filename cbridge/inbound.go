package cbridge

var _ Mapping = &InboundMapping{}

//InboundMapping maps an endpoint to an event bus address
type InboundMapping struct {
	CamelMapping
	publish  bool
	bodyType string
}

//FromCamel creates an InboundMapping consuming from the endpoint described by uri
func FromCamel(uri string) (*InboundMapping, error) {
	if uri == "" {
		return nil, invalidArgument("uri", Inbound)
	}
	m := &InboundMapping{CamelMapping: newCamelMapping()}
	return m.SetURI(uri), nil
}

//FromCamelEndpoint creates an InboundMapping consuming from the endpoint the handle points to
func FromCamelEndpoint(endpoint EndpointRef) (*InboundMapping, error) {
	if endpoint.IsZero() {
		return nil, invalidArgument("endpoint", Inbound)
	}
	m := &InboundMapping{CamelMapping: newCamelMapping()}
	return m.SetEndpoint(endpoint), nil
}

//Direction implements Mapping
func (m *InboundMapping) Direction() Direction {
	return Inbound
}

//SetAddress sets the bus address messages are delivered to
func (m *InboundMapping) SetAddress(address string) *InboundMapping {
	m.setAddress(address)
	return m
}

//ToVertx is the fluent version of SetAddress
func (m *InboundMapping) ToVertx(address string) *InboundMapping {
	return m.SetAddress(address)
}

//SetURI sets the uri of the source endpoint
func (m *InboundMapping) SetURI(uri string) *InboundMapping {
	m.setURI(uri)
	return m
}

//SetEndpoint sets the handle of the source endpoint
func (m *InboundMapping) SetEndpoint(endpoint EndpointRef) *InboundMapping {
	m.setEndpoint(endpoint)
	return m
}

//SetHeadersCopy sets whether endpoint headers are copied to the bus message
func (m *InboundMapping) SetHeadersCopy(copyHeaders bool) *InboundMapping {
	m.setHeadersCopy(copyHeaders)
	return m
}

//WithoutHeadersCopy disables the headers copy
func (m *InboundMapping) WithoutHeadersCopy() *InboundMapping {
	return m.SetHeadersCopy(false)
}

//IsPublish reports if messages are published to every consumer of the address instead of sent to one
func (m *InboundMapping) IsPublish() bool {
	return m.publish
}

//SetPublish sets the publish flag, false by default
func (m *InboundMapping) SetPublish(publish bool) *InboundMapping {
	m.publish = publish
	return m
}

//UsePublish sets the publish flag
func (m *InboundMapping) UsePublish() *InboundMapping {
	return m.SetPublish(true)
}

//BodyType returns the name of the payload type the bus consumers expect, empty means as received
func (m *InboundMapping) BodyType() string {
	return m.bodyType
}

//WithBodyType sets the name of the payload type the bus consumers expect
func (m *InboundMapping) WithBodyType(bodyType string) *InboundMapping {
	m.bodyType = bodyType
	return m
}
