package pg

import (
	"github.com/wework/cbridge/cbridge"
	"github.com/wework/cbridge/cbridge/config"
	"github.com/wework/cbridge/cbridge/worker"
)

//Definition is the persisted form of a mapping, handles are replaced by the uri and worker name they point to
type Definition struct {
	Direction   cbridge.Direction
	Address     string
	URI         string
	HeadersCopy bool
	Blocking    bool
	Worker      string
	Publish     bool
	BodyType    string
}

//WorkerNames resolves worker executor handles to their descriptions
type WorkerNames interface {
	Resolve(ref cbridge.ExecutorRef) (cbridge.ExecutorInfo, bool)
}

//DefinitionsFromOptions flattens the mappings of opts, outbound mappings first
func DefinitionsFromOptions(opts *cbridge.BridgeOptions, endpoints cbridge.EndpointResolver, workers WorkerNames) []Definition {
	defs := make([]Definition, 0)
	for _, m := range opts.OutboundMappings() {
		def := Definition{
			Direction:   cbridge.Outbound,
			Address:     m.Address(),
			URI:         mappingURI(m, endpoints),
			HeadersCopy: m.IsHeadersCopy(),
			Blocking:    m.IsBlocking(),
		}
		if !m.WorkerExecutor().IsZero() && workers != nil {
			if info, ok := workers.Resolve(m.WorkerExecutor()); ok {
				def.Worker = info.Name
			}
		}
		defs = append(defs, def)
	}
	for _, m := range opts.InboundMappings() {
		defs = append(defs, Definition{
			Direction:   cbridge.Inbound,
			Address:     m.Address(),
			URI:         mappingURI(m, endpoints),
			HeadersCopy: m.IsHeadersCopy(),
			Publish:     m.IsPublish(),
			BodyType:    m.BodyType(),
		})
	}
	return defs
}

func mappingURI(m cbridge.Mapping, endpoints cbridge.EndpointResolver) string {
	if m.URI() != "" || m.Endpoint().IsZero() || endpoints == nil {
		return m.URI()
	}
	uri, _ := endpoints.ResolveURI(m.Endpoint())
	return uri
}

/*
	ToConfig turns persisted definitions back into a configuration that can be applied.
	Pool sizes are not persisted, named workers are declared with the default pool size.
*/
func ToConfig(defs []Definition) *config.Config {
	cfg := &config.Config{Log: config.LogConfig{Level: "info", Format: "text"}}
	declared := make(map[string]bool)
	for _, def := range defs {
		headersCopy := def.HeadersCopy
		switch def.Direction {
		case cbridge.Outbound:
			if def.Worker != "" && def.Worker != worker.DefaultPoolName && !declared[def.Worker] {
				declared[def.Worker] = true
				cfg.Workers = append(cfg.Workers, config.WorkerConfig{
					Name:     def.Worker,
					PoolSize: worker.DefaultPoolSize,
				})
			}
			cfg.Outbound = append(cfg.Outbound, config.OutboundConfig{
				Address:     def.Address,
				URI:         def.URI,
				HeadersCopy: &headersCopy,
				Blocking:    def.Blocking,
				Worker:      def.Worker,
			})
		case cbridge.Inbound:
			cfg.Inbound = append(cfg.Inbound, config.InboundConfig{
				URI:         def.URI,
				Address:     def.Address,
				HeadersCopy: &headersCopy,
				Publish:     def.Publish,
				BodyType:    def.BodyType,
			})
		}
	}
	return cfg
}
