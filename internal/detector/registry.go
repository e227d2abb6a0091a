package detector

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps the lowercased form of every model alias to its model.
// Keys are folded on both registration and lookup, so no mixed-case key is
// ever stored or queried. Safe for concurrent reads after construction.
type Registry struct {
	mu     sync.RWMutex
	models map[string]*DetectorModel
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[string]*DetectorModel),
	}
}

// Register validates the model and binds each of its aliases. An alias
// already bound to a different model is a hard error; re-registering the
// same model is a no-op.
func (r *Registry) Register(m *DetectorModel) error {
	if err := m.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	aliases := m.Aliases()
	for _, alias := range aliases {
		if bound, exists := r.models[strings.ToLower(alias)]; exists && bound != m {
			return fmt.Errorf("%w: %q already bound to %q", ErrAliasConflict, alias, bound.ShortName)
		}
	}
	for _, alias := range aliases {
		r.models[strings.ToLower(alias)] = m
	}
	return nil
}

// Get looks up a model by any of its aliases, case-insensitively.
func (r *Registry) Get(key string) (*DetectorModel, error) {
	r.mu.RLock()
	m, ok := r.models[strings.ToLower(key)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModelNotFound, key)
	}
	return m, nil
}

// Has reports whether any alias matches key, case-insensitively.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	_, ok := r.models[strings.ToLower(key)]
	r.mu.RUnlock()
	return ok
}

// Keys returns the canonical short names of all registered models, sorted.
// This is the choice set exposed on the command line.
func (r *Registry) Keys() []string {
	models := r.Models()
	keys := make([]string, 0, len(models))
	for _, m := range models {
		keys = append(keys, m.ShortName)
	}
	sort.Strings(keys)
	return keys
}

// AllKeys returns every alias of every registered model, folded to lower
// case, deduplicated and sorted.
func (r *Registry) AllKeys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.models))
	for k := range r.models {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Models returns a snapshot of the distinct registered models, sorted by
// short name for deterministic iteration.
func (r *Registry) Models() []*DetectorModel {
	r.mu.RLock()
	seen := make(map[*DetectorModel]struct{}, len(r.models))
	models := make([]*DetectorModel, 0, len(r.models))
	for _, m := range r.models {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		models = append(models, m)
	}
	r.mu.RUnlock()

	sort.Slice(models, func(i, j int) bool {
		return models[i].ShortName < models[j].ShortName
	})
	return models
}
