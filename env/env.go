// Package env holds the variable bindings of one robot program. The parser
// writes them as it meets assignment statements; the interpreter only
// reads them. An Environment lives exactly as long as the program it was
// parsed alongside and is not safe for concurrent use.
package env

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUndefinedVariable is returned when reading a variable that was never
// assigned.
var ErrUndefinedVariable = errors.New("undefined variable")

// Environment maps variable names (including the leading $) to integers.
type Environment struct {
	values map[string]int
}

// New creates an empty environment.
func New() *Environment {
	return &Environment{values: make(map[string]int)}
}

// Assign binds name to value, overwriting any previous binding.
func (e *Environment) Assign(name string, value int) {
	e.values[name] = value
}

// Lookup returns the value bound to name.
func (e *Environment) Lookup(name string) (int, error) {
	v, ok := e.values[name]
	if !ok {
		return 0, fmt.Errorf("%w %s", ErrUndefinedVariable, name)
	}
	return v, nil
}

// Has reports whether name is bound.
func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Len returns the number of bindings.
func (e *Environment) Len() int { return len(e.values) }

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for k := range e.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]int {
	out := make(map[string]int, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}
