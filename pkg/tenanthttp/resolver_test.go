package tenanthttp_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altosaas/tenantkit/pkg/tenanthttp"
)

func TestHeaderResolver(t *testing.T) {
	t.Parallel()

	t.Run("reads_configured_header", func(t *testing.T) {
		t.Parallel()

		resolver := tenanthttp.NewHeaderResolver("X-Org")
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("X-Org", "acme")

		id, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "acme", id)
	})

	t.Run("defaults_to_x_tenant_id", func(t *testing.T) {
		t.Parallel()

		resolver := tenanthttp.NewHeaderResolver("")
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("X-Tenant-ID", " acme ")

		id, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "acme", id)
	})

	t.Run("missing_header", func(t *testing.T) {
		t.Parallel()

		resolver := tenanthttp.NewHeaderResolver("X-Tenant-ID")
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)

		id, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Empty(t, id)
	})
}

func TestSubdomainResolver(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		suffix string
		host   string
		want   string
	}{
		{"with_suffix", ".saas.com", "acme.saas.com", "acme"},
		{"with_suffix_and_port", ".saas.com", "acme.saas.com:8080", "acme"},
		{"wrong_suffix", ".saas.com", "acme.other.com", ""},
		{"no_suffix", "", "acme.app.com", "acme"},
		{"bare_domain", ".saas.com", "saas.com", ""},
		{"www_is_not_a_tenant", "", "www.app.com", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			resolver := tenanthttp.NewSubdomainResolver(tc.suffix)
			req := httptest.NewRequest(http.MethodGet, "http://"+tc.host+"/", nil)
			req.Host = tc.host

			id, err := resolver.Resolve(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestPathResolver(t *testing.T) {
	t.Parallel()

	t.Run("extracts_segment", func(t *testing.T) {
		t.Parallel()

		resolver := tenanthttp.NewPathResolver(2)
		req := httptest.NewRequest(http.MethodGet, "http://example.com/tenants/acme/orders", nil)

		id, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "acme", id)
	})

	t.Run("path_too_short", func(t *testing.T) {
		t.Parallel()

		resolver := tenanthttp.NewPathResolver(3)
		req := httptest.NewRequest(http.MethodGet, "http://example.com/tenants", nil)

		id, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("invalid_position", func(t *testing.T) {
		t.Parallel()

		resolver := tenanthttp.NewPathResolver(0)
		req := httptest.NewRequest(http.MethodGet, "http://example.com/tenants/acme", nil)

		_, err := resolver.Resolve(req)
		assert.Error(t, err)
	})
}

func TestCompositeResolver(t *testing.T) {
	t.Parallel()

	t.Run("first_non_empty_wins", func(t *testing.T) {
		t.Parallel()

		resolver := tenanthttp.NewCompositeResolver(
			tenanthttp.NewHeaderResolver("X-Tenant-ID"),
			tenanthttp.NewPathResolver(1),
		)
		req := httptest.NewRequest(http.MethodGet, "http://example.com/globex/orders", nil)

		id, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "globex", id)
	})

	t.Run("collects_resolver_errors", func(t *testing.T) {
		t.Parallel()

		failing := tenanthttp.ResolverFunc(func(r *http.Request) (string, error) {
			return "", errors.New("boom")
		})
		resolver := tenanthttp.NewCompositeResolver(failing)
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)

		_, err := resolver.Resolve(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}
