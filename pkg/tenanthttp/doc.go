// Package tenanthttp connects HTTP requests to tenant database contexts.
//
// It resolves a tenant identifier from the request (header, subdomain, or
// path segment), asks a tenantdb factory for that tenant's database context,
// and stores the context in the request context for downstream handlers.
//
// # Usage
//
//	import (
//		"github.com/altosaas/tenantkit/pkg/tenantdb"
//		"github.com/altosaas/tenantkit/pkg/tenanthttp"
//	)
//
//	resolver := tenanthttp.NewSubdomainResolver(".saas.com")
//	mw := tenanthttp.Middleware(resolver, factory,
//		tenanthttp.WithSkipPaths([]string{"/health"}),
//		tenanthttp.WithRequireTenant(true),
//	)
//
//	mux := http.NewServeMux()
//	mux.Handle("/orders", mw(http.HandlerFunc(listOrders)))
//
//	func listOrders(w http.ResponseWriter, r *http.Request) {
//		dbctx := tenanthttp.MustDatabaseContext(r.Context())
//		coll := dbctx.Database().Collection("orders")
//		// ...
//	}
//
// # Resolver Strategies
//
// Built-in resolvers cover the common identification schemes:
//
//   - HeaderResolver: reads a header such as "X-Tenant-ID"
//   - SubdomainResolver: "acme" from "acme.app.com"
//   - PathResolver: a 1-based path segment, e.g. /tenants/{id}/...
//   - CompositeResolver: tries several resolvers in order
//
// Custom strategies implement the Resolver interface or wrap a ResolverFunc.
//
// # Error Mapping
//
// The default error handler translates the library's error taxonomy into
// status codes a client can act on: an unknown tenant is 404 (reject), an
// unreachable tenant database is 503 (retry later), a missing identifier
// with WithRequireTenant is 400. Override with WithErrorHandler to match an
// application's response format.
package tenanthttp
