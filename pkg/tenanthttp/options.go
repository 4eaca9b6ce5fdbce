package tenanthttp

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/altosaas/tenantkit/pkg/tenantconfig"
	"github.com/altosaas/tenantkit/pkg/tenantdb"
)

// ErrorHandler handles errors that occur during tenant resolution.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// config holds middleware configuration.
type config struct {
	errorHandler  ErrorHandler
	skipPaths     []string
	requireTenant bool
	logger        *slog.Logger
}

// Option configures the middleware.
type Option func(*config)

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		if handler != nil {
			c.errorHandler = handler
		}
	}
}

// WithSkipPaths sets path prefixes that bypass tenant resolution.
func WithSkipPaths(paths []string) Option {
	return func(c *config) {
		c.skipPaths = paths
	}
}

// WithRequireTenant makes requests without a resolvable tenant identifier
// fail instead of passing through without a database context.
func WithRequireTenant(require bool) Option {
	return func(c *config) {
		c.requireTenant = require
	}
}

// WithLogger sets a custom logger for the middleware.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, tenantconfig.ErrUnknownTenant):
		http.Error(w, "Unknown tenant", http.StatusNotFound)
	case errors.Is(err, ErrNoTenantIdentifier):
		http.Error(w, "Missing tenant identifier", http.StatusBadRequest)
	case errors.Is(err, tenantdb.ErrConnectFailed):
		http.Error(w, "Tenant database unavailable", http.StatusServiceUnavailable)
	case errors.Is(err, tenantdb.ErrFactoryClosed):
		http.Error(w, "Service shutting down", http.StatusServiceUnavailable)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
