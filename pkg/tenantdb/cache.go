package tenantdb

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/sync/singleflight"
)

// clientCache maps tenant ids to shared mongo clients. Population is lazy:
// a client is created on the first request for its tenant and reused by every
// request after that. singleflight guarantees a single winner when concurrent
// callers race on an unseen id; losers wait for the winner's result instead
// of opening their own client. Entries are never evicted - tenant cardinality
// is bounded by configuration and each client is meant to live as long as the
// process.
type clientCache struct {
	mu      sync.RWMutex
	clients map[string]*mongo.Client
	sf      singleflight.Group
}

func newClientCache() *clientCache {
	return &clientCache{clients: make(map[string]*mongo.Client)}
}

// getOrConnect returns the cached client for tenantID, invoking connect at
// most once per id no matter how many callers race on it. A failed connect is
// reported to every waiting caller and leaves the id vacant, so a transient
// error never poisons the key. Flights for different ids do not block each
// other.
func (c *clientCache) getOrConnect(ctx context.Context, tenantID string, connect func(context.Context) (*mongo.Client, error)) (*mongo.Client, error) {
	c.mu.RLock()
	client, ok := c.clients[tenantID]
	c.mu.RUnlock()
	if ok {
		return client, nil
	}

	v, err, _ := c.sf.Do(tenantID, func() (any, error) {
		// Re-check inside the flight: an earlier winner may have stored the
		// client between our read miss and joining the flight.
		c.mu.RLock()
		client, ok := c.clients[tenantID]
		c.mu.RUnlock()
		if ok {
			return client, nil
		}

		client, err := connect(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.clients[tenantID] = client
		c.mu.Unlock()
		return client, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*mongo.Client), nil
}

// get returns the cached client for tenantID without creating one.
func (c *clientCache) get(tenantID string) (*mongo.Client, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	client, ok := c.clients[tenantID]
	return client, ok
}

// snapshot returns a copy of the current id to client mapping.
func (c *clientCache) snapshot() map[string]*mongo.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]*mongo.Client, len(c.clients))
	for id, client := range c.clients {
		out[id] = client
	}
	return out
}

// drain removes and returns all cached clients. Used on shutdown.
func (c *clientCache) drain() map[string]*mongo.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.clients
	c.clients = make(map[string]*mongo.Client)
	return out
}

// len returns the number of cached clients.
func (c *clientCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.clients)
}
