package graph

import (
	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Graph is a composition of modules: an ordered step sequence plus the input
// and output bindings derived from it. A graph is mutated only through an
// open Builder; between contexts it is immutable and can itself be invoked
// inside another graph, which copies its topology (see Builder.Invoke).
//
// Example:
//
//	g := graph.New(graph.Training, graph.WithName("pipeline"))
//	err := g.Compose(func(b *graph.Builder) error {
//	    xy, err := b.Invoke(dataSource, nil)
//	    if err != nil {
//	        return err
//	    }
//	    _, err = b.Invoke(model, graph.Inputs{"x": xy[0]})
//	    return err
//	})
type Graph struct {
	name string
	mode OperationMode
	log  logr.Logger

	steps    []Step
	produced [][]*Tensor           // per step, tensors in output-port order
	index    map[uuid.UUID]PortRef // tensor id -> producing (step, port) here

	modules map[string]Module
	order   []string // module names in first-use order

	inputs  []GraphInput
	outputs []outputEntry
	manual  bool // current output table came from manual binding

	open bool
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithName sets an explicit graph name. Without it a default
// "neuralgraph<n>" name is generated.
func WithName(name string) Option {
	return func(g *Graph) {
		g.name = name
	}
}

// WithLogger routes construction-time logging through the given logger.
// The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(g *Graph) {
		g.log = log
	}
}

// New creates an empty graph with the given operation mode.
func New(mode OperationMode, opts ...Option) *Graph {
	g := &Graph{
		mode:    mode,
		log:     logr.Discard(),
		index:   make(map[uuid.UUID]PortRef),
		modules: make(map[string]Module),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.name == "" {
		g.name = DefaultName("neuralgraph")
	}
	return g
}

// Name returns the graph name.
func (g *Graph) Name() string {
	return g.name
}

// Mode returns the graph's operation mode.
func (g *Graph) Mode() OperationMode {
	return g.mode
}

// IsOpen reports whether a builder for this graph is currently open.
func (g *Graph) IsOpen() bool {
	return g.open
}

// Len returns the number of distinct modules referenced by the graph's
// steps. Invoking the same module twice adds a step but not a module, so
// Len stays put; nesting merges the inner graph's modules into this count.
func (g *Graph) Len() int {
	return len(g.modules)
}

// Module returns the constituent module with the given name.
func (g *Graph) Module(name string) (Module, error) {
	m, ok := g.modules[name]
	if !ok {
		return nil, &NotFoundError{Label: "module", Key: name, Scope: g.name}
	}
	return m, nil
}

// Modules returns the constituent modules in first-use order.
func (g *Graph) Modules() []Module {
	mods := make([]Module, len(g.order))
	for i, name := range g.order {
		mods[i] = g.modules[name]
	}
	return mods
}

// Steps returns a copy of the step sequence.
func (g *Graph) Steps() []Step {
	steps := make([]Step, len(g.steps))
	copy(steps, g.steps)
	return steps
}

// registerModule records a module under its name on first use.
// checkModuleName must have passed before this is called.
func (g *Graph) registerModule(m Module) {
	if _, ok := g.modules[m.Name()]; !ok {
		g.modules[m.Name()] = m
		g.order = append(g.order, m.Name())
	}
}

// checkModuleName rejects binding a name already held by a different
// instance. Re-using the same instance is fine.
func (g *Graph) checkModuleName(m Module) error {
	if existing, ok := g.modules[m.Name()]; ok && existing != m {
		return &NameConflictError{Graph: g.name, Name: m.Name()}
	}
	return nil
}
