package posting

import (
	"sort"
	"sync"
)

// Registry maps smart-code domain segments to rule processors. It is an
// explicit object constructed once at startup and passed by reference into
// the dispatcher - there is no package-global registry, so tests get full
// isolation. Steady-state request handling only reads it; registering
// after startup is a configuration error, not a hot-reload path.
type Registry struct {
	mu         sync.RWMutex
	processors map[string]RuleProcessor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		processors: make(map[string]RuleProcessor),
	}
}

// Register binds a processor to a domain. Registration is last-writer-wins:
// a second registration for the same domain replaces the first for all
// subsequent dispatches. Domain matching is case-sensitive as authored.
func (r *Registry) Register(domain string, processor RuleProcessor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processors[domain] = processor
}

// RegisterProcessor binds a processor under its own Domain()
func (r *Registry) RegisterProcessor(processor RuleProcessor) {
	r.Register(processor.Domain(), processor)
}

// Lookup returns the processor for a domain, ok=false when none registered
func (r *Registry) Lookup(domain string) (RuleProcessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.processors[domain]
	return p, ok
}

// Domains returns the registered domain names, sorted, each listed once
func (r *Registry) Domains() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.processors))
	for name := range r.processors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
