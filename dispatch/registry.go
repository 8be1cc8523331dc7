package dispatch

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/starlark-runtime/errors"
)

// Registry maps a receiver type name to its native methods. Registration
// happens once at process start; afterwards every thread reads the registry
// concurrently.
type Registry struct {
	methods map[string]map[string]*Method
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		methods: make(map[string]map[string]*Method),
	}
}

// Register installs a method for the given receiver type name, e.g. "list".
// Registering the same name twice for one type is an error.
func (r *Registry) Register(recvType string, m *Method) error {
	if recvType == "" {
		return errors.InvalidInput(errors.PhaseRegister, "receiver type cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.methods[recvType] == nil {
		r.methods[recvType] = make(map[string]*Method)
	}
	if _, exists := r.methods[recvType][m.Name()]; exists {
		return errors.Registration(m.Name(), "already registered for type "+recvType)
	}
	r.methods[recvType][m.Name()] = m

	Logger().Debug("registered native method",
		zap.String("type", recvType),
		zap.String("method", m.Name()))
	return nil
}

// RegisterSpec builds a method from spec and installs it.
func (r *Registry) RegisterSpec(recvType string, spec MethodSpec) error {
	m, err := NewMethod(spec)
	if err != nil {
		return err
	}
	return r.Register(recvType, m)
}

// Method returns the named method of a receiver type.
func (r *Registry) Method(recvType, name string) (*Method, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.methods[recvType][name]
	return m, ok
}

// SelfCall returns the method that makes values of recvType callable, if one
// was registered.
func (r *Registry) SelfCall(recvType string) (*Method, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.methods[recvType] {
		if m.IsSelfCall() {
			return m, true
		}
	}
	return nil, false
}

// Names returns the sorted method names of a receiver type.
func (r *Registry) Names(recvType string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.methods[recvType]))
	for name := range r.methods[recvType] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Types returns the sorted receiver type names with registered methods.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.methods))
	for t := range r.methods {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
