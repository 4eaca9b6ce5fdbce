// Package tenantconfig provides the immutable tenant configuration store for
// multi-tenant database access.
//
// Tenant settings are loaded once at process startup, validated eagerly, and
// frozen into a Registry. After that point lookups are plain map reads and
// need no synchronization, which keeps the per-request configuration cost
// negligible.
//
// # Usage
//
//	import "github.com/altosaas/tenantkit/pkg/tenantconfig"
//
//	registry, err := tenantconfig.LoadFile("tenants.yaml")
//	if err != nil {
//		log.Fatal(err) // malformed configuration is fatal at startup
//	}
//
//	settings, err := registry.Lookup("acme")
//	if errors.Is(err, tenantconfig.ErrUnknownTenant) {
//		// reject the request; this tenant was never configured
//	}
//
// # Tenants File
//
// The file is a YAML document with a single tenants list. Each entry requires
// tenant_id, connection_url, and database_name; max_pool_size (default 100),
// min_pool_size (default 0), and wait_queue_timeout_seconds (default 5) are
// optional. Duplicate tenant ids fail the load rather than last-write-wins,
// so a copy-paste mistake in the file surfaces at startup instead of routing
// one tenant's traffic to another's database.
//
// Process-level defaults for the optional fields can be overridden through
// the TENANTKIT_MAX_POOL_SIZE, TENANTKIT_MIN_POOL_SIZE, and
// TENANTKIT_WAIT_QUEUE_TIMEOUT environment variables, with .env file support
// for local development.
//
// # Error Handling
//
// Two failure classes are kept deliberately distinct so callers can pick the
// right remediation:
//
//   - ErrInvalidConfig (with ErrNoTenants, ErrDuplicateTenant joined in):
//     bad setup, surfaced at load time, the process should not start.
//   - ErrUnknownTenant: bad request, surfaced at lookup time, the caller
//     should reject that request and carry on.
//
// All sentinels are compatible with errors.Is().
package tenantconfig
