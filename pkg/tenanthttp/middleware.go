package tenanthttp

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/altosaas/tenantkit/pkg/tenantdb"
)

// ContextFactory creates tenant database contexts. *tenantdb.Factory is the
// production implementation; tests may substitute their own.
type ContextFactory interface {
	CreateContext(ctx context.Context, tenantID string) (*tenantdb.Context, error)
}

// Middleware creates HTTP middleware that resolves the tenant identifier from
// incoming requests, obtains the tenant's database context from the factory,
// and stores it in the request context for downstream handlers.
func Middleware(resolver Resolver, factory ContextFactory, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		errorHandler: defaultErrorHandler,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, skip := range cfg.skipPaths {
				if strings.HasPrefix(r.URL.Path, skip) {
					next.ServeHTTP(w, r)
					return
				}
			}

			tenantID, err := resolver.Resolve(r)
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}

			if tenantID == "" {
				if cfg.requireTenant {
					cfg.errorHandler(w, r, ErrNoTenantIdentifier)
					return
				}
				// No identifier and none required: continue without a
				// database context.
				next.ServeHTTP(w, r)
				return
			}

			dbctx, err := factory.CreateContext(r.Context(), tenantID)
			if err != nil {
				cfg.logger.ErrorContext(r.Context(), "tenant context creation failed",
					slog.String("tenant_id", tenantID),
					slog.String("error", err.Error()))
				cfg.errorHandler(w, r, err)
				return
			}

			ctx := WithDatabaseContext(r.Context(), dbctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireDatabaseContext creates middleware that ensures a tenant database
// context is present. Useful for protecting tenant-scoped routes mounted
// after a Middleware configured to pass through identifier-less requests.
func RequireDatabaseContext(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := DatabaseContext(r.Context()); !ok {
				errorHandler(w, r, ErrNoDatabaseContext)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
