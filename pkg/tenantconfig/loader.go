package tenantconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults are process-level fallbacks applied to tenant entries that omit
// optional fields. They are loaded from environment variables so deployments
// can tune pool behavior without touching the tenants file.
type Defaults struct {
	MaxPoolSize      uint64        `env:"TENANTKIT_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize      uint64        `env:"TENANTKIT_MIN_POOL_SIZE" envDefault:"0"`
	WaitQueueTimeout time.Duration `env:"TENANTKIT_WAIT_QUEUE_TIMEOUT" envDefault:"5s"`
}

var defaultEnvLoaded sync.Once

// LoadDefaults parses process-level fallbacks from environment variables.
// The default .env file is loaded first if present.
func LoadDefaults() (Defaults, error) {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	var d Defaults
	if err := env.Parse(&d); err != nil {
		return Defaults{}, errors.Join(ErrInvalidConfig, err)
	}
	return d, nil
}

// tenantRecord is the wire form of one tenant entry. Optional fields use
// pointers so an explicit zero can be told apart from an omitted field.
type tenantRecord struct {
	ID                      string  `yaml:"tenant_id"`
	ConnectionURL           string  `yaml:"connection_url"`
	DatabaseName            string  `yaml:"database_name"`
	MaxPoolSize             *uint64 `yaml:"max_pool_size"`
	MinPoolSize             *uint64 `yaml:"min_pool_size"`
	WaitQueueTimeoutSeconds *int    `yaml:"wait_queue_timeout_seconds"`
}

type fileConfig struct {
	Tenants []tenantRecord `yaml:"tenants"`
}

func (r tenantRecord) toSettings(d Defaults) Settings {
	s := Settings{
		ID:               r.ID,
		ConnectionURL:    r.ConnectionURL,
		DatabaseName:     r.DatabaseName,
		MaxPoolSize:      d.MaxPoolSize,
		MinPoolSize:      d.MinPoolSize,
		WaitQueueTimeout: d.WaitQueueTimeout,
	}
	if r.MaxPoolSize != nil {
		s.MaxPoolSize = *r.MaxPoolSize
	}
	if r.MinPoolSize != nil {
		s.MinPoolSize = *r.MinPoolSize
	}
	if r.WaitQueueTimeoutSeconds != nil {
		s.WaitQueueTimeout = time.Duration(*r.WaitQueueTimeoutSeconds) * time.Second
	}
	return s
}

// LoadFile reads a YAML tenants file and builds a Registry from it.
// See Parse for the expected document shape and failure modes.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a YAML document of the form
//
//	tenants:
//	  - tenant_id: acme
//	    connection_url: mongodb://db.acme.internal:27017
//	    database_name: acme
//	    max_pool_size: 50
//
// and builds a Registry. Optional fields fall back to the process-level
// Defaults. A missing or empty tenants list, a YAML syntax error, or any
// invalid entry fails with ErrInvalidConfig.
func Parse(r io.Reader) (*Registry, error) {
	defaults, err := LoadDefaults()
	if err != nil {
		return nil, err
	}

	var doc fileConfig
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("parsing tenants file: %w", err))
	}
	if len(doc.Tenants) == 0 {
		return nil, errors.Join(ErrInvalidConfig, ErrNoTenants)
	}

	entries := make([]Settings, len(doc.Tenants))
	for i, record := range doc.Tenants {
		entries[i] = record.toSettings(defaults)
	}
	return New(entries)
}
