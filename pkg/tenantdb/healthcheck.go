package tenantdb

import (
	"context"
	"errors"
	"fmt"
)

// Healthcheck returns a health check function for one tenant, suitable for
// Kubernetes readiness/liveness probes or HTTP health endpoints.
//
// The check pings the tenant's cached client and never triggers a connection:
// a tenant that has not been accessed yet reports ErrNotConnected rather than
// opening a pool just to probe it.
func (f *Factory) Healthcheck(tenantID string) func(context.Context) error {
	return func(ctx context.Context) error {
		client, ok := f.cache.get(tenantID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotConnected, tenantID)
		}
		if err := client.Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, fmt.Errorf("tenant %s: %w", tenantID, err))
		}
		return nil
	}
}

// HealthcheckAll returns a health check function that pings every connected
// tenant client. Tenants without a cached client are skipped; failures are
// joined so the probe output names each unhealthy tenant.
func (f *Factory) HealthcheckAll() func(context.Context) error {
	return func(ctx context.Context) error {
		var errs []error
		for tenantID, client := range f.cache.snapshot() {
			if err := client.Ping(ctx, nil); err != nil {
				errs = append(errs, fmt.Errorf("tenant %s: %w", tenantID, err))
			}
		}
		if len(errs) > 0 {
			return errors.Join(append([]error{ErrHealthcheckFailed}, errs...)...)
		}
		return nil
	}
}
