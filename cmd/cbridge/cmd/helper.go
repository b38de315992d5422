package cmd

import (
	"github.com/wework/cbridge/cbridge"
	"github.com/wework/cbridge/cbridge/config"
	"github.com/wework/cbridge/cbridge/endpoint"
	"github.com/wework/cbridge/cbridge/worker"
)

type loaded struct {
	opts      *cbridge.BridgeOptions
	endpoints *endpoint.Registry
	workers   *worker.Registry
}

func loadOptions(path string) (*loaded, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}

	l := &loaded{
		endpoints: endpoint.NewRegistry(),
		workers:   worker.NewRegistry(),
	}
	l.endpoints.SetLogger(logger)
	l.workers.SetLogger(logger)

	b, err := cfg.Apply(l.endpoints, l.workers)
	if err != nil {
		return nil, err
	}
	if l.opts, err = b.WithLogger(logger).Build(); err != nil {
		return nil, err
	}
	return l, nil
}
