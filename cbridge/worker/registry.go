package worker

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wework/cbridge/cbridge"
)

const (
	//DefaultPoolName names the process wide worker executor
	DefaultPoolName = "cbridge-worker"
	//DefaultPoolSize is the size of the process wide worker executor
	DefaultPoolSize uint = 20
	//DefaultMaxExecuteTime bounds how long a blocking task may run on the process wide worker executor
	DefaultMaxExecuteTime = 60 * time.Second
)

var _ cbridge.ExecutorResolver = &Registry{}

/*
	Registry holds named, shared worker executor descriptors.
	Mappings reference executors by handle only, closing an executor is done
	through the registry and never by a mapping.
*/
type Registry struct {
	*cbridge.Glogged
	lock      *sync.RWMutex
	executors map[cbridge.ExecutorRef]cbridge.ExecutorInfo
	byName    map[string]cbridge.ExecutorRef
	def       cbridge.ExecutorRef
}

//NewRegistry returns a registry holding only the default worker executor
func NewRegistry() *Registry {
	r := &Registry{
		Glogged:   &cbridge.Glogged{},
		lock:      &sync.RWMutex{},
		executors: make(map[cbridge.ExecutorRef]cbridge.ExecutorInfo),
		byName:    make(map[string]cbridge.ExecutorRef)}
	r.def = r.add(cbridge.ExecutorInfo{
		Name:           DefaultPoolName,
		PoolSize:       DefaultPoolSize,
		MaxExecuteTime: DefaultMaxExecuteTime})
	return r
}

func (r *Registry) add(info cbridge.ExecutorInfo) cbridge.ExecutorRef {
	ref := cbridge.NewExecutorRef()
	r.executors[ref] = info
	r.byName[info.Name] = ref
	return ref
}

/*
	Create returns a handle to the named worker executor.
	Executors are shared: creating a name that already exists returns the existing handle
	and keeps its original settings.
*/
func (r *Registry) Create(name string, poolSize uint, maxExecuteTime time.Duration) (cbridge.ExecutorRef, error) {
	if name == "" {
		return cbridge.ExecutorRef{}, fmt.Errorf("worker executor name must not be empty")
	}
	if poolSize < 1 {
		return cbridge.ExecutorRef{}, fmt.Errorf("worker executor %s: pool size must be at least 1", name)
	}
	if maxExecuteTime <= 0 {
		maxExecuteTime = DefaultMaxExecuteTime
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	if ref, exists := r.byName[name]; exists {
		return ref, nil
	}
	ref := r.add(cbridge.ExecutorInfo{
		Name:           name,
		PoolSize:       poolSize,
		MaxExecuteTime: maxExecuteTime})
	r.Log().WithFields(logrus.Fields{"worker": name, "pool_size": poolSize}).Debug("worker executor created")
	return ref, nil
}

//Resolve returns the description of the worker executor the handle points to
func (r *Registry) Resolve(ref cbridge.ExecutorRef) (cbridge.ExecutorInfo, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	info, ok := r.executors[ref]
	return info, ok
}

//Lookup returns the handle of the named worker executor
func (r *Registry) Lookup(name string) (cbridge.ExecutorRef, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	ref, ok := r.byName[name]
	return ref, ok
}

//Has implements cbridge.ExecutorResolver
func (r *Registry) Has(ref cbridge.ExecutorRef) bool {
	_, ok := r.Resolve(ref)
	return ok
}

//Default implements cbridge.ExecutorResolver
func (r *Registry) Default() cbridge.ExecutorRef {
	return r.def
}

//Close removes the worker executor, the default one can not be closed
func (r *Registry) Close(ref cbridge.ExecutorRef) error {
	if ref == r.def {
		return fmt.Errorf("the default worker executor can not be closed")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	info, ok := r.executors[ref]
	if !ok {
		return fmt.Errorf("unknown worker executor %s", ref)
	}
	delete(r.executors, ref)
	delete(r.byName, info.Name)
	r.Log().WithField("worker", info.Name).Debug("worker executor closed")
	return nil
}

//Len returns the number of worker executors including the default one
func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.executors)
}
