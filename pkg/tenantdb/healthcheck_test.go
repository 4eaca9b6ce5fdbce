package tenantdb_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altosaas/tenantkit/pkg/tenantdb"
)

func TestFactory_Healthcheck(t *testing.T) {
	t.Parallel()

	t.Run("not_connected_tenant", func(t *testing.T) {
		t.Parallel()

		factory, err := tenantdb.New(newTestRegistry(t, "acme"),
			tenantdb.WithConnector(stubConnector(t)))
		require.NoError(t, err)

		check := factory.Healthcheck("acme")
		err = check(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, tenantdb.ErrNotConnected)
	})

	t.Run("unreachable_store", func(t *testing.T) {
		t.Parallel()

		factory, err := tenantdb.New(newTestRegistry(t, "acme"),
			tenantdb.WithConnector(stubConnector(t)))
		require.NoError(t, err)

		_, err = factory.CreateContext(context.Background(), "acme")
		require.NoError(t, err)

		// The stub client points at nothing; the ping must fail and wrap
		// the healthcheck sentinel.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		err = factory.Healthcheck("acme")(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, tenantdb.ErrHealthcheckFailed)
		assert.Contains(t, err.Error(), "acme")
	})

	t.Run("all_with_no_clients", func(t *testing.T) {
		t.Parallel()

		factory, err := tenantdb.New(newTestRegistry(t, "acme"),
			tenantdb.WithConnector(stubConnector(t)))
		require.NoError(t, err)

		assert.NoError(t, factory.HealthcheckAll()(context.Background()))
	})

	t.Run("all_reports_unhealthy_tenants", func(t *testing.T) {
		t.Parallel()

		factory, err := tenantdb.New(newTestRegistry(t, "Tenant1", "Tenant2"),
			tenantdb.WithConnector(stubConnector(t)))
		require.NoError(t, err)

		_, err = factory.CreateContext(context.Background(), "Tenant1")
		require.NoError(t, err)
		_, err = factory.CreateContext(context.Background(), "Tenant2")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		err = factory.HealthcheckAll()(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, tenantdb.ErrHealthcheckFailed)
		assert.Contains(t, err.Error(), "Tenant1")
		assert.Contains(t, err.Error(), "Tenant2")
	})
}
