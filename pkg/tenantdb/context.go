package tenantdb

import "go.mongodb.org/mongo-driver/v2/mongo"

// Context is a lightweight, per-call view over one tenant's shared client.
// It is created fresh by every CreateContext call, holds no resources of its
// own, and needs no teardown: the client it references is owned by the
// factory's cache and outlives any individual Context.
type Context struct {
	tenantID     string
	databaseName string
	client       *mongo.Client
}

// TenantID returns the tenant this context is scoped to.
func (c *Context) TenantID() string {
	return c.tenantID
}

// DatabaseName returns the name of the tenant's database.
func (c *Context) DatabaseName() string {
	return c.databaseName
}

// Client returns the shared client handle for the tenant. The client's
// connection pool is shared with every other context for the same tenant.
func (c *Context) Client() *mongo.Client {
	return c.client
}

// Database resolves the tenant's database view against the shared client.
// The view is a cheap handle; it is resolved per call rather than cached so
// the client stays the only tenant-scoped shared state.
func (c *Context) Database() *mongo.Database {
	return c.client.Database(c.databaseName)
}
