// Package tenantdb provides tenant-scoped MongoDB client management for
// multi-tenant applications.
//
// Each tenant gets one long-lived, pooled client, created lazily on the
// tenant's first request and shared by every request after that. The factory
// hands out lightweight per-call Context values that resolve the tenant's
// database view against that shared client, so the expensive thing (the
// client and its connection pool) exists at most once per tenant while the
// cheap thing (the database handle) is rebuilt per call.
//
// # Usage
//
//	import (
//		"github.com/altosaas/tenantkit/pkg/tenantconfig"
//		"github.com/altosaas/tenantkit/pkg/tenantdb"
//	)
//
//	registry, err := tenantconfig.LoadFile("tenants.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	factory, err := tenantdb.New(registry)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer factory.Close(context.Background())
//
//	dbctx, err := factory.CreateContext(ctx, "acme")
//	if err != nil {
//		// errors.Is(err, tenantconfig.ErrUnknownTenant): reject the request
//		// errors.Is(err, tenantdb.ErrConnectFailed): backing store unreachable
//		return err
//	}
//	coll := dbctx.Database().Collection("orders")
//
// # Concurrency
//
// CreateContext is safe to call from any number of goroutines. Concurrent
// first requests for the same tenant are collapsed into a single connection
// attempt: one caller connects, the rest wait for its result, and all observe
// the same client instance. Requests for different tenants never wait on each
// other. If the winning attempt fails, every waiter receives the error and
// the cache entry stays vacant, so a later request retries instead of
// inheriting a cached failure.
//
// # Eviction
//
// There is none, deliberately. Tenant cardinality is bounded by configuration
// and each client is meant to live for the process lifetime, so the cache
// grows to at most one client per configured tenant and is released as a
// whole by Close. Replacing a live client in place (forced reconnect) is not
// supported.
//
// # Error Handling
//
// Sentinel errors compose with errors.Is(). An unknown tenant
// (tenantconfig.ErrUnknownTenant) is a caller mistake and is never retried
// internally; ErrConnectFailed means the tenant is configured but its store
// was unreachable, which the caller may retry later. The factory itself never
// retries - retry policy belongs to the caller or the driver.
package tenantdb
