package cbridge

//DefaultHeadersCopy is the headers copy value new mappings start with
const DefaultHeadersCopy = true

/*
	CamelMapping holds what inbound and outbound mappings share: the bus address,
	the endpoint described either by uri or by an endpoint handle and whether
	message headers travel along with the body.
	Setters live on the embedding types so they can return the concrete mapping.
*/
type CamelMapping struct {
	address     string
	uri         string
	endpoint    EndpointRef
	headersCopy bool
}

func newCamelMapping() CamelMapping {
	return CamelMapping{headersCopy: DefaultHeadersCopy}
}

//Address returns the event bus address
func (m *CamelMapping) Address() string {
	return m.address
}

//URI returns the textual endpoint descriptor, empty when the mapping uses an endpoint handle
func (m *CamelMapping) URI() string {
	return m.uri
}

//Endpoint returns the endpoint handle, the zero value when the mapping uses a uri
func (m *CamelMapping) Endpoint() EndpointRef {
	return m.endpoint
}

//IsHeadersCopy reports if message headers are copied when bridging
func (m *CamelMapping) IsHeadersCopy() bool {
	return m.headersCopy
}

func (m *CamelMapping) setAddress(address string) {
	m.address = address
}

func (m *CamelMapping) setURI(uri string) {
	m.uri = uri
}

func (m *CamelMapping) setEndpoint(endpoint EndpointRef) {
	m.endpoint = endpoint
}

func (m *CamelMapping) setHeadersCopy(copyHeaders bool) {
	m.headersCopy = copyHeaders
}
