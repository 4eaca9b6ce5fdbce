package tenantconfig

import "errors"

var (
	// ErrInvalidConfig is returned when the tenant configuration is malformed
	// or fails validation. It is fatal: the process should not start serving.
	ErrInvalidConfig = errors.New("invalid tenant configuration")

	// ErrNoTenants is returned when the tenant list is missing or empty.
	ErrNoTenants = errors.New("no tenants configured")

	// ErrDuplicateTenant is returned when two entries share a tenant id.
	ErrDuplicateTenant = errors.New("duplicate tenant id")

	// ErrUnknownTenant is returned when a lookup references a tenant id
	// absent from the configuration. Unlike ErrInvalidConfig it is a
	// per-request condition the caller can handle by rejecting the request.
	ErrUnknownTenant = errors.New("unknown tenant")
)
