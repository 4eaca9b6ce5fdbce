package tenantconfig

import (
	"errors"
	"fmt"
	"sort"
)

// Registry is an immutable mapping from tenant id to Settings. It is built
// once at startup and never mutated afterwards, so concurrent reads need no
// synchronization.
type Registry struct {
	settings map[string]Settings
}

// New builds a Registry from the given entries after applying defaults and
// validating every entry. It fails with ErrInvalidConfig if the list is
// empty, if any required field is missing, if pool bounds are inconsistent,
// or if two entries share a tenant id.
func New(entries []Settings) (*Registry, error) {
	if len(entries) == 0 {
		return nil, errors.Join(ErrInvalidConfig, ErrNoTenants)
	}

	settings := make(map[string]Settings, len(entries))
	var errs []error
	for _, entry := range entries {
		entry = entry.withDefaults()
		if err := entry.validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, exists := settings[entry.ID]; exists {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateTenant, entry.ID))
			continue
		}
		settings[entry.ID] = entry
	}
	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}

	return &Registry{settings: settings}, nil
}

// Lookup returns the settings for the given tenant id.
// Returns ErrUnknownTenant if the id is not configured.
func (r *Registry) Lookup(tenantID string) (Settings, error) {
	s, ok := r.settings[tenantID]
	if !ok {
		return Settings{}, fmt.Errorf("%w: %s", ErrUnknownTenant, tenantID)
	}
	return s, nil
}

// Has reports whether the given tenant id is configured.
func (r *Registry) Has(tenantID string) bool {
	_, ok := r.settings[tenantID]
	return ok
}

// IDs returns the configured tenant ids in lexical order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.settings))
	for id := range r.settings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of configured tenants.
func (r *Registry) Len() int {
	return len(r.settings)
}
