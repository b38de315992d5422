package endpoint

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/wework/cbridge/cbridge"
)

var _ cbridge.EndpointRegistry = &Registry{}

//Registry owns endpoints and hands out handles to them, it is safe for concurrent use
type Registry struct {
	*cbridge.Glogged
	lock      *sync.RWMutex
	endpoints map[cbridge.EndpointRef]*Endpoint
	byURI     map[string]cbridge.EndpointRef
}

//NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Glogged:   &cbridge.Glogged{},
		lock:      &sync.RWMutex{},
		endpoints: make(map[cbridge.EndpointRef]*Endpoint),
		byURI:     make(map[string]cbridge.EndpointRef)}
}

//Register parses the uri and returns a handle to the endpoint, registering the same uri twice returns the same handle
func (r *Registry) Register(uri string) (cbridge.EndpointRef, error) {
	ep, err := Parse(uri)
	if err != nil {
		r.Log().WithError(err).WithField("uri", uri).Warn("failed registering endpoint")
		return cbridge.EndpointRef{}, err
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	if ref, exists := r.byURI[ep.URI]; exists {
		return ref, nil
	}
	ref := cbridge.NewEndpointRef()
	r.endpoints[ref] = ep
	r.byURI[ep.URI] = ref
	r.Log().WithFields(logrus.Fields{"uri": ep.URI, "endpoint": ref.String()}).Debug("endpoint registered")
	return ref, nil
}

//Resolve returns the endpoint the handle points to
func (r *Registry) Resolve(ref cbridge.EndpointRef) (*Endpoint, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	ep, ok := r.endpoints[ref]
	return ep, ok
}

//ResolveURI implements cbridge.EndpointResolver
func (r *Registry) ResolveURI(ref cbridge.EndpointRef) (string, bool) {
	ep, ok := r.Resolve(ref)
	if !ok {
		return "", false
	}
	return ep.URI, true
}

//Lookup returns the handle registered for the uri
func (r *Registry) Lookup(uri string) (cbridge.EndpointRef, bool) {
	uri = strings.TrimSpace(uri)
	r.lock.RLock()
	defer r.lock.RUnlock()
	ref, ok := r.byURI[uri]
	return ref, ok
}

//Remove disposes the endpoint, mappings still holding the handle will fail to resolve it
func (r *Registry) Remove(ref cbridge.EndpointRef) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	ep, ok := r.endpoints[ref]
	if !ok {
		return false
	}
	delete(r.endpoints, ref)
	delete(r.byURI, ep.URI)
	return true
}

//Len returns the number of registered endpoints
func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.endpoints)
}
