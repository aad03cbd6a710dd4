package service

// Registry is a session-scoped client cache with an explicit reset
// Registries are owned by a session and reset when the world unloads
//
// Lifecycle:
//  1. Construction at world load
//  2. [runtime operation from render and tick threads]
//  3. Reset() at world unload - drop all entries, release resources
type Registry interface {
	// Name returns the unique identifier for this registry, used in logs
	Name() string

	// Reset releases every entry
	// Must be idempotent - safe to call on an empty registry
	Reset() error
}

// RegistryFunc adapts a plain reset function to Registry
type RegistryFunc struct {
	Label string
	Fn    func() error
}

// Name implements Registry
func (r RegistryFunc) Name() string {
	return r.Label
}

// Reset implements Registry
func (r RegistryFunc) Reset() error {
	if r.Fn == nil {
		return nil
	}
	return r.Fn()
}
