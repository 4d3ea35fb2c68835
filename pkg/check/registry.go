package check

import (
	"sort"
	"sync"
)

// CheckDef describes a registered check for discovery and rule validation.
// The evaluation function itself is dispatched by the assessment engine;
// the registry carries metadata only.
type CheckDef struct {
	Kind        Kind
	Name        string   // human-readable name, e.g. "completeness"
	Description string   // one-line description for the rules listing
	Fields      []string // rule fields the kind requires beyond "type"
}

// globalRegistry is the single registry of check definitions.
var globalRegistry = &registry{defs: make(map[Kind]CheckDef)}

type registry struct {
	mu   sync.RWMutex
	defs map[Kind]CheckDef
}

// Register adds a check definition to the registry.
// Call this from init() functions in the per-kind check files.
func Register(def CheckDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.defs[def.Kind] = def
}

// Lookup returns the definition for a kind.
func Lookup(kind Kind) (CheckDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	def, ok := globalRegistry.defs[kind]
	return def, ok
}

// All returns every registered definition, sorted by kind for stable output.
func All() []CheckDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	defs := make([]CheckDef, 0, len(globalRegistry.defs))
	for _, def := range globalRegistry.defs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Kind < defs[j].Kind })
	return defs
}

// Count returns the number of registered checks.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.defs)
}
