package dashboard

import (
	"fmt"
	"sync"
)

// SourceHook lets packages register model sources during init().
type SourceHook func(reg *SourceRegistry) error

var (
	globalHookMu sync.Mutex
	globalHooks  []SourceHook
)

// DefaultSourceName is the registered name of the built-in dealer report.
const DefaultSourceName = "dealer"

// RegisterSourceHook registers a hook executed against new registries.
func RegisterSourceHook(h SourceHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// SourceRegistry maps names to model sources so hosts can pick a report by
// name instead of by file path.
type SourceRegistry struct {
	mu      sync.RWMutex
	sources map[string]ModelSource
}

// NewSourceRegistry builds a registry holding the default dealer report and
// applies global hooks.
func NewSourceRegistry() *SourceRegistry {
	reg := &SourceRegistry{sources: map[string]ModelSource{}}
	_ = reg.Register(DefaultSourceName, NewDefaultSource())
	_ = reg.ApplyHooks()
	return reg
}

// ApplyHooks executes registered source hooks.
func (r *SourceRegistry) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	return nil
}

// Register stores a source under name, replacing any previous entry.
func (r *SourceRegistry) Register(name string, source ModelSource) error {
	if name == "" {
		return fmt.Errorf("dashboard: source name is required")
	}
	if source == nil {
		return fmt.Errorf("dashboard: source %s cannot be nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[name] = source
	return nil
}

// Source fetches a source by name.
func (r *SourceRegistry) Source(name string) (ModelSource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	source, ok := r.sources[name]
	return source, ok
}

// Resolve returns the named source, or a FileSource when ref is not a
// registered name. An empty ref resolves to the dealer report.
func (r *SourceRegistry) Resolve(ref string) ModelSource {
	if ref == "" {
		ref = DefaultSourceName
	}
	if source, ok := r.Source(ref); ok {
		return source
	}
	return NewFileSource(ref)
}
