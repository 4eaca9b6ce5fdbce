package tenanthttp

import (
	"context"

	"github.com/altosaas/tenantkit/pkg/tenantdb"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithDatabaseContext stores a tenant database context in ctx.
func WithDatabaseContext(ctx context.Context, dbctx *tenantdb.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, dbctx)
}

// DatabaseContext retrieves the tenant database context from ctx.
// Returns nil, false if none is present.
func DatabaseContext(ctx context.Context) (*tenantdb.Context, bool) {
	dbctx, ok := ctx.Value(contextKey{}).(*tenantdb.Context)
	return dbctx, ok
}

// MustDatabaseContext retrieves the tenant database context from ctx.
// Panics if none is present. Use this only in handlers guarded by
// RequireDatabaseContext.
func MustDatabaseContext(ctx context.Context) *tenantdb.Context {
	dbctx, ok := DatabaseContext(ctx)
	if !ok || dbctx == nil {
		panic("tenanthttp: no tenant database context in request context")
	}
	return dbctx
}
