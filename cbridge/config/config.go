package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/wework/cbridge/cbridge"
	"github.com/wework/cbridge/cbridge/builder"
	"github.com/wework/cbridge/cbridge/endpoint"
	"github.com/wework/cbridge/cbridge/worker"
)

//Config describes the mappings of a bridge
type Config struct {
	Log         LogConfig        `yaml:"log"`
	ResolveURIs bool             `yaml:"resolve_uris"`
	Workers     []WorkerConfig   `yaml:"workers"`
	Outbound    []OutboundConfig `yaml:"outbound"`
	Inbound     []InboundConfig  `yaml:"inbound"`
}

//LogConfig log configuration
type LogConfig struct {
	Level  string `yaml:"level"`  // logrus level name, default info
	Format string `yaml:"format"` // text or json, default text
}

//WorkerConfig declares a named worker executor
type WorkerConfig struct {
	Name           string        `yaml:"name"`
	PoolSize       uint          `yaml:"pool_size"`
	MaxExecuteTime time.Duration `yaml:"max_execute_time"`
}

//OutboundConfig declares a bus to endpoint mapping
type OutboundConfig struct {
	Address     string `yaml:"address"`
	URI         string `yaml:"uri"`
	HeadersCopy *bool  `yaml:"headers_copy"` // unset keeps the mapping default
	Blocking    bool   `yaml:"blocking"`
	Worker      string `yaml:"worker"` // name of a worker executor
}

//InboundConfig declares an endpoint to bus mapping
type InboundConfig struct {
	URI         string `yaml:"uri"`
	Address     string `yaml:"address"`
	HeadersCopy *bool  `yaml:"headers_copy"`
	Publish     bool   `yaml:"publish"`
	BodyType    string `yaml:"body_type"`
}

//LoadConfig loads configuration from file
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "cbridge.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

//Parse parses yaml configuration
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

//NewLogger creates the logger described by the log configuration
func (c *Config) NewLogger() (*logrus.Logger, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	logger.SetLevel(level)

	switch strings.ToLower(c.Log.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	return logger, nil
}

/*
	Apply creates the declared worker executors in workers and returns a builder loaded
	with the declared mappings, resolving worker names to handles.
	Mappings that can not even be constructed fail here, everything else is left to Build.
*/
func (c *Config) Apply(endpoints *endpoint.Registry, workers *worker.Registry) (cbridge.Builder, error) {
	for _, w := range c.Workers {
		if _, err := workers.Create(w.Name, w.PoolSize, w.MaxExecuteTime); err != nil {
			return nil, err
		}
	}

	b := builder.New().Bridge().WithEndpoints(endpoints).WithWorkers(workers)
	if c.ResolveURIs {
		b = b.ResolveURIs()
	}

	for i, oc := range c.Outbound {
		m, err := cbridge.FromVertx(oc.Address)
		if err != nil {
			return nil, fmt.Errorf("outbound mapping #%d: %w", i, err)
		}
		m.ToCamel(oc.URI).SetBlocking(oc.Blocking)
		if oc.HeadersCopy != nil {
			m.SetHeadersCopy(*oc.HeadersCopy)
		}
		if oc.Worker != "" {
			ref, ok := workers.Lookup(oc.Worker)
			if !ok {
				return nil, fmt.Errorf("outbound mapping #%d: unknown worker executor %q", i, oc.Worker)
			}
			m.SetWorkerExecutor(ref)
		}
		b = b.Outbound(m)
	}

	for i, ic := range c.Inbound {
		m, err := cbridge.FromCamel(ic.URI)
		if err != nil {
			return nil, fmt.Errorf("inbound mapping #%d: %w", i, err)
		}
		m.ToVertx(ic.Address).SetPublish(ic.Publish).WithBodyType(ic.BodyType)
		if ic.HeadersCopy != nil {
			m.SetHeadersCopy(*ic.HeadersCopy)
		}
		b = b.Inbound(m)
	}
	return b, nil
}
