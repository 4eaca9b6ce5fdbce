package tenantdb

import (
	"log/slog"
	"time"
)

// Option configures the factory.
type Option func(*Factory)

// WithLogger sets a logger for connection lifecycle events. The factory is
// silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithConnector replaces the default mongo connector. Useful for tests and
// for callers that need custom client options (TLS, auth mechanisms) beyond
// what tenant settings carry.
func WithConnector(connector Connector) Option {
	return func(f *Factory) {
		if connector != nil {
			f.connector = connector
		}
	}
}

// WithConnectTimeout bounds how long establishing a tenant's client may take.
// Defaults to 10 seconds.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(f *Factory) {
		if timeout > 0 {
			f.connectTimeout = timeout
		}
	}
}
