package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match these through errors.Is.
var (
	// ErrNotFound is returned when a module, port, input or output key does
	// not exist. Lookups never silently return a zero value.
	ErrNotFound = errors.New("graph: not found")

	// ErrIncompatibleModes is returned when an entity's operation mode
	// forbids invoking it inside the target graph.
	ErrIncompatibleModes = errors.New("graph: incompatible operation modes")

	// ErrGraphOpen is returned when opening a graph that already has an open
	// builder, or when nesting a graph whose own context is still open.
	ErrGraphOpen = errors.New("graph: construction context already open")

	// ErrBuilderClosed is returned when a builder is used after Close.
	ErrBuilderClosed = errors.New("graph: builder already closed")

	// ErrNameConflict is returned when an invocation would bind a module
	// name already held by a different instance.
	ErrNameConflict = errors.New("graph: module name already bound to a different instance")
)

// IncompatibleModesError reports a rejected invocation: an entity whose
// operation mode cannot run inside the target graph's mode. It carries both
// modes for diagnostics and matches ErrIncompatibleModes via errors.Is.
type IncompatibleModesError struct {
	Graph  string        // enclosing graph name
	Entity string        // invoked module or graph name
	Outer  OperationMode // enclosing graph mode
	Inner  OperationMode // invoked entity mode
}

// Error returns the error string.
func (e *IncompatibleModesError) Error() string {
	return fmt.Sprintf("graph: cannot invoke %s-mode entity %q inside %s-mode graph %q",
		e.Inner, e.Entity, e.Outer, e.Graph)
}

// Is reports whether the target matches ErrIncompatibleModes.
func (e *IncompatibleModesError) Is(err error) bool {
	return err == ErrIncompatibleModes
}

// NotFoundError reports a failed lookup of a named thing inside a graph or
// module. It matches ErrNotFound via errors.Is.
type NotFoundError struct {
	Label string // what kind of thing was looked up, e.g. "module", "output"
	Key   string // the key that missed
	Scope string // owning graph or module name, may be empty
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("graph: %s %q not found in %q", e.Label, e.Key, e.Scope)
	}
	return fmt.Sprintf("graph: %s %q not found", e.Label, e.Key)
}

// Is reports whether the target matches ErrNotFound.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// IsNotFound reports whether err is a missed lookup.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// NameConflictError reports an invocation that would bind a module name
// already held by a different instance in the same graph. It matches
// ErrNameConflict via errors.Is.
type NameConflictError struct {
	Graph string
	Name  string
}

// Error returns the error string.
func (e *NameConflictError) Error() string {
	return fmt.Sprintf("graph: module name %q already bound to a different instance in graph %q", e.Name, e.Graph)
}

// Is reports whether the target matches ErrNameConflict.
func (e *NameConflictError) Is(err error) bool {
	return err == ErrNameConflict
}
