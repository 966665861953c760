package table

import (
	"context"
	"fmt"
)

// Handle is the type-erased view of a Table held by a Registry.
// Every Table[T] satisfies it.
type Handle interface {
	Name() string
	Def() string
	Create(ctx context.Context, db DB, schema Schema, force bool) error
}

// Registry holds the long-lived table handles of an application, one per
// record type. It replaces hidden per-type globals: register each handle
// once at startup and thread the registry through the application context.
//
// Registration is expected during startup, before concurrent use; the
// Registry adds no locking of its own.
type Registry struct {
	handles []Handle
	byName  map[string]Handle
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Handle),
	}
}

// Register adds a table handle. Re-registering a name replaces the previous
// handle in place, keeping the original registration order.
func (r *Registry) Register(h Handle) {
	if _, ok := r.byName[h.Name()]; ok {
		for i, existing := range r.handles {
			if existing.Name() == h.Name() {
				r.handles[i] = h
				break
			}
		}
	} else {
		r.handles = append(r.handles, h)
	}
	r.byName[h.Name()] = h
}

// Lookup returns the handle registered under name.
func (r *Registry) Lookup(name string) (Handle, bool) {
	h, ok := r.byName[name]
	return h, ok
}

// Names returns the registered table names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.handles))
	for i, h := range r.handles {
		names[i] = h.Name()
	}
	return names
}

// Handles returns all registered handles in registration order.
func (r *Registry) Handles() []Handle {
	return r.handles
}

// CreateAll takes one schema snapshot and creates every registered table
// against it, in registration order. With force, every table is dropped and
// re-created. The first failure stops the walk.
func (r *Registry) CreateAll(ctx context.Context, db DB, force bool) error {
	schema, err := Snapshot(ctx, db)
	if err != nil {
		return err
	}
	for _, h := range r.handles {
		if err := h.Create(ctx, db, schema, force); err != nil {
			return fmt.Errorf("create %s: %w", h.Name(), err)
		}
	}
	return nil
}
