package tenanthttp

import "errors"

var (
	// ErrNoTenantIdentifier is returned when no resolver could extract a
	// tenant identifier from the request.
	ErrNoTenantIdentifier = errors.New("no tenant identifier in request")

	// ErrNoDatabaseContext is returned when a handler requires a tenant
	// database context that is missing from the request context.
	ErrNoDatabaseContext = errors.New("no tenant database context in request")
)
