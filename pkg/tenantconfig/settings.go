package tenantconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Fallbacks for optional per-tenant fields. Entries that omit a field get
// these values unless process-level Defaults override them (see loader.go).
const (
	DefaultMaxPoolSize      uint64        = 100
	DefaultMinPoolSize      uint64        = 0
	DefaultWaitQueueTimeout time.Duration = 5 * time.Second
)

// Settings holds the connection parameters for a single tenant.
// Values are immutable once loaded into a Registry.
type Settings struct {
	ID               string        // unique tenant identifier, used as the cache key
	ConnectionURL    string        // connection string of the tenant's backing store
	DatabaseName     string        // database the tenant's data lives in
	MaxPoolSize      uint64        // maximum number of pooled connections
	MinPoolSize      uint64        // minimum number of pooled connections
	WaitQueueTimeout time.Duration // how long an operation may wait for a pooled connection
}

// withDefaults fills zero-valued optional fields with the package fallbacks.
func (s Settings) withDefaults() Settings {
	if s.MaxPoolSize == 0 {
		s.MaxPoolSize = DefaultMaxPoolSize
	}
	if s.WaitQueueTimeout == 0 {
		s.WaitQueueTimeout = DefaultWaitQueueTimeout
	}
	return s
}

func (s Settings) validate() error {
	var errs []error
	if strings.TrimSpace(s.ID) == "" {
		errs = append(errs, errors.New("tenant id is required"))
	}
	if strings.TrimSpace(s.ConnectionURL) == "" {
		errs = append(errs, fmt.Errorf("tenant %q: connection url is required", s.ID))
	}
	if strings.TrimSpace(s.DatabaseName) == "" {
		errs = append(errs, fmt.Errorf("tenant %q: database name is required", s.ID))
	}
	if s.MaxPoolSize < 1 {
		errs = append(errs, fmt.Errorf("tenant %q: max pool size must be at least 1", s.ID))
	}
	if s.MinPoolSize > s.MaxPoolSize {
		errs = append(errs, fmt.Errorf("tenant %q: min pool size %d exceeds max pool size %d", s.ID, s.MinPoolSize, s.MaxPoolSize))
	}
	if s.WaitQueueTimeout < 0 {
		errs = append(errs, fmt.Errorf("tenant %q: wait queue timeout must not be negative", s.ID))
	}
	return errors.Join(errs...)
}
