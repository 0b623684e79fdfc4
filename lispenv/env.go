// Package lispenv implements the symbol table used during evaluation: a
// mapping from symbol name to value, with a parent link for lexical scoping.
// Grounded on the teacher's mappedBinding (sxeval/binding.go), simplified to
// drop constant bindings and binding-as-Object identity, neither of which
// spec.md calls for.
package lispenv

import (
	"fmt"

	"github.com/shengbinmeng/lispy/lispval"
)

// Env is a lexical scope: a name-to-value map plus a parent scope. The root
// environment (built-ins and top-level defs) has a nil parent.
type Env struct {
	parent *Env
	vars   map[string]lispval.Value
}

// New creates an empty environment with the given parent. Pass nil to build
// a root environment.
func New(parent *Env) *Env {
	return &Env{parent: parent, vars: make(map[string]lispval.Value)}
}

// Parent returns the enclosing environment, or nil for the root.
func (e *Env) Parent() *Env { return e.parent }

// SetParent rebinds the environment's parent. Used when a lambda's captured
// environment must be re-parented onto a call-time local scope.
func (e *Env) SetParent(parent *Env) { e.parent = parent }

// Get resolves name by searching this environment and then each enclosing
// parent in turn. The returned value is always a deep copy so that callers
// may freely mutate it without corrupting the binding. Resolution failure
// is reported as a NotBoundError, grounded on the teacher's
// sxeval.NotBoundError naming.
func (e *Env) Get(name string) (lispval.Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, found := env.vars[name]; found {
			return v.Copy(), nil
		}
	}
	return nil, NotBoundError{Name: name}
}

// Put creates or overwrites a binding in this environment only (local
// write), never ascending to a parent. The stored value is a deep copy of
// v, so the environment never aliases caller-owned storage.
func (e *Env) Put(name string, v lispval.Value) {
	e.vars[name] = v.Copy()
}

// Def writes name at the outermost (root) environment reachable from e,
// implementing the "global ascending" write spec.md's `def` builtin
// requires.
func (e *Env) Def(name string, v lispval.Value) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.Put(name, v)
}

// AddBuiltin registers a builtin value under name in this environment,
// local to e (builtins are normally registered directly on the root).
func (e *Env) AddBuiltin(name string, v lispval.Value) {
	e.Put(name, v)
}

// Copy returns a new environment with the same parent and an independent,
// deep-copied set of local bindings. Copying an environment does not copy
// its ancestors, since those are shared, immutable-from-here scope.
func (e *Env) Copy() *Env {
	cp := New(e.parent)
	for name, v := range e.vars {
		cp.vars[name] = v.Copy()
	}
	return cp
}

// NotBoundError reports that a symbol has no binding in any reachable
// environment.
type NotBoundError struct{ Name string }

func (err NotBoundError) Error() string {
	return fmt.Sprintf("unbound symbol '%s'", err.Name)
}
