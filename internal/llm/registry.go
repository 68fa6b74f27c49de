package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zhe.chen/hyprompt/pkg/types"
)

// Factory builds a Generator for a concrete model name
type Factory func(model string, config types.LLMConfig) (Generator, error)

type registration struct {
	factory Factory
	reason  string // set for registered-but-unsupported models
}

// Registry maps model identifiers to the providers that serve them.
// Exact names win over prefixes; among prefixes the longest match wins.
type Registry struct {
	exact    map[string]registration
	prefixes map[string]registration
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		exact:    make(map[string]registration),
		prefixes: make(map[string]registration),
	}
}

// Register binds an exact model name to a factory
func (r *Registry) Register(model string, factory Factory) {
	r.exact[model] = registration{factory: factory}
}

// RegisterPrefix binds every model name starting with prefix to a factory
func (r *Registry) RegisterPrefix(prefix string, factory Factory) {
	r.prefixes[prefix] = registration{factory: factory}
}

// RegisterUnsupported reserves a model name that fails at construction
func (r *Registry) RegisterUnsupported(model, reason string) {
	r.exact[model] = registration{reason: reason}
}

// New creates the Generator for model. Unsupported and unknown models are
// rejected here so that callers never hold a generator that cannot work.
func (r *Registry) New(model string, config types.LLMConfig) (Generator, error) {
	reg, ok := r.lookup(model)
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnknownModel, model, strings.Join(r.Models(), ", "))
	}
	if reg.factory == nil {
		if reg.reason != "" {
			return nil, fmt.Errorf("%w: %s: %s", ErrModelNotSupported, model, reg.reason)
		}
		return nil, fmt.Errorf("%w: %s", ErrModelNotSupported, model)
	}
	return reg.factory(model, config)
}

// Models returns the exact model names known to the registry, sorted
func (r *Registry) Models() []string {
	names := make([]string, 0, len(r.exact))
	for name := range r.exact {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) lookup(model string) (registration, bool) {
	if reg, ok := r.exact[model]; ok {
		return reg, true
	}

	best := ""
	for prefix := range r.prefixes {
		if strings.HasPrefix(model, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return registration{}, false
	}
	return r.prefixes[best], true
}
