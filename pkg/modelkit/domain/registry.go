package domain

import "github.com/pkg/errors"

// ModelConstructor creates a fresh, independently owned model instance.
type ModelConstructor func() Model

// RegistryEntry maps a model type identifier (what the user picks from a list) to its constructor.
type RegistryEntry struct {
	ID          string
	Constructor ModelConstructor
}

// ModelRegistry is the fixed set of model types available to callers. It's immutable once constructed, so it's
// safe to share between goroutines. It owns no model instances.
type ModelRegistry struct {
	ids          []string
	constructors map[string]ModelConstructor
}

func NewModelRegistry(entries ...RegistryEntry) (*ModelRegistry, error) {
	registry := &ModelRegistry{
		constructors: make(map[string]ModelConstructor, len(entries)),
	}
	for _, entry := range entries {
		if entry.Constructor == nil {
			return nil, errors.Errorf("no constructor for model type '%s'", entry.ID)
		}
		if _, ok := registry.constructors[entry.ID]; ok {
			return nil, errors.Wrapf(ErrDuplicateModelType, "'%s'", entry.ID)
		}
		registry.ids = append(registry.ids, entry.ID)
		registry.constructors[entry.ID] = entry.Constructor
	}
	return registry, nil
}

// Create returns a new instance of the model type `id`, or ErrUnknownModelType.
func (r *ModelRegistry) Create(id string) (Model, error) {
	constructor, ok := r.constructors[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownModelType, "'%s'", id)
	}
	return constructor(), nil
}

// ListAvailable returns the registered identifiers in registration order.
func (r *ModelRegistry) ListAvailable() []string {
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}
