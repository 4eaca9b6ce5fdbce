package tenantdb

import "errors"

var (
	// ErrConnectFailed is returned when the driver could not establish a
	// pooled client for a tenant. The cache key stays vacant, so a later
	// call for the same tenant retries the connection.
	ErrConnectFailed = errors.New("failed to connect to tenant database")

	// ErrFactoryClosed is returned when a context is requested after Close.
	ErrFactoryClosed = errors.New("tenant database factory is closed")

	// ErrNotConnected is returned by healthchecks for a tenant whose client
	// has not been created yet. Healthchecks never trigger a connection.
	ErrNotConnected = errors.New("no client connected for tenant")

	// ErrHealthcheckFailed is returned when a tenant client fails to ping
	// its backing store.
	ErrHealthcheckFailed = errors.New("tenant database healthcheck failed")
)
