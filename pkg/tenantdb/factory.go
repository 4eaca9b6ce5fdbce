package tenantdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/altosaas/tenantkit/pkg/tenantconfig"
)

// DefaultConnectTimeout bounds client establishment when no override is set.
const DefaultConnectTimeout = 10 * time.Second

// Factory creates per-call tenant database contexts backed by a shared,
// lazily populated client cache. It is safe for concurrent use; the expected
// lifecycle is one Factory per process, created at startup and closed on
// shutdown to release pooled connections.
type Factory struct {
	registry       *tenantconfig.Registry
	cache          *clientCache
	connector      Connector
	connectTimeout time.Duration
	logger         *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// New creates a factory over the given registry.
func New(registry *tenantconfig.Registry, opts ...Option) (*Factory, error) {
	if registry == nil {
		return nil, errors.New("tenantdb: registry is required")
	}

	f := &Factory{
		registry:       registry,
		cache:          newClientCache(),
		connectTimeout: DefaultConnectTimeout,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.connector == nil {
		f.connector = defaultConnector(f.connectTimeout)
	}
	return f, nil
}

// CreateContext resolves the tenant's settings, obtains the shared client
// (connecting it on the tenant's first use), and returns a per-call context
// bound to the tenant's database.
//
// Errors: tenantconfig.ErrUnknownTenant passes through unchanged for tenants
// absent from configuration; connection failures wrap ErrConnectFailed and
// name the tenant. On a cache hit the call does no I/O.
func (f *Factory) CreateContext(ctx context.Context, tenantID string) (*Context, error) {
	f.mu.RLock()
	closed := f.closed
	f.mu.RUnlock()
	if closed {
		return nil, ErrFactoryClosed
	}

	settings, err := f.registry.Lookup(tenantID)
	if err != nil {
		return nil, err
	}

	client, err := f.cache.getOrConnect(ctx, tenantID, func(flightCtx context.Context) (*mongo.Client, error) {
		// Detached from the winning caller's cancellation: concurrent
		// waiters share this construction, so one caller's local timeout
		// must not abort it for the others.
		connectCtx, cancel := context.WithTimeout(context.WithoutCancel(flightCtx), f.connectTimeout)
		defer cancel()

		client, err := f.connector(connectCtx, settings)
		if err != nil {
			f.logger.ErrorContext(ctx, "tenant client connect failed",
				slog.String("tenant_id", tenantID),
				slog.String("error", err.Error()))
			return nil, err
		}
		f.logger.InfoContext(ctx, "tenant client connected",
			slog.String("tenant_id", tenantID),
			slog.Uint64("max_pool_size", settings.MaxPoolSize))
		return client, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: tenant %s: %w", ErrConnectFailed, tenantID, err)
	}

	return &Context{
		tenantID:     tenantID,
		databaseName: settings.DatabaseName,
		client:       client,
	}, nil
}

// ClientCount returns the number of tenant clients currently cached.
func (f *Factory) ClientCount() int {
	return f.cache.len()
}

// Close disconnects every cached client and marks the factory closed.
// Subsequent CreateContext calls fail with ErrFactoryClosed. Close is
// idempotent.
func (f *Factory) Close(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	f.mu.Unlock()

	var errs []error
	for tenantID, client := range f.cache.drain() {
		if err := client.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tenant %s: %w", tenantID, err))
		}
	}
	return errors.Join(errs...)
}
