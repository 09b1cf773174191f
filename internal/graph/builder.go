package graph

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// Builder is an open construction context for one graph. All mutation goes
// through it: invoking modules and nested graphs appends steps, SetOutput
// records manual output bindings. Close finalizes the output table and makes
// the builder unusable; the graph can be re-opened later and resumes its
// existing steps and outputs.
//
// A builder targets exactly the graph it was opened on. Builders for
// different graphs may be open at the same time; there is no ambient
// "current graph".
type Builder struct {
	g      *Graph
	manual []outputEntry // SetOutput assignments during this context, in order
	done   bool
}

// Open starts a construction context for the graph. It fails with
// ErrGraphOpen when another builder for the same graph is still open.
func (g *Graph) Open() (*Builder, error) {
	if g.open {
		return nil, fmt.Errorf("graph %q: %w", g.name, ErrGraphOpen)
	}
	g.open = true
	g.log.V(1).Info("construction context opened", "graph", g.name, "steps", len(g.steps))
	return &Builder{g: g}, nil
}

// Compose opens a builder, runs fn with it and always closes, even when fn
// fails. Failed invocations never mutate the graph, so no rollback happens
// on the error path.
func (g *Graph) Compose(fn func(*Builder) error) error {
	b, err := g.Open()
	if err != nil {
		return err
	}
	return multierr.Append(fn(b), b.Close())
}

// Graph returns the graph this builder targets.
func (b *Builder) Graph() *Graph {
	return b.g
}

// Close finalizes the context. When SetOutput was called at least once
// during this context the manual entries become the entire output table,
// otherwise the default binding is recomputed from the step sequence. The
// builder is unusable afterwards.
func (b *Builder) Close() error {
	if b.done {
		return fmt.Errorf("graph %q: %w", b.g.name, ErrBuilderClosed)
	}
	b.done = true
	b.g.open = false
	if len(b.manual) > 0 {
		b.g.outputs = append(b.g.outputs[:0], b.manual...)
		b.g.manual = true
	} else {
		b.g.recomputeOutputs()
	}
	b.g.log.V(1).Info("construction context closed",
		"graph", b.g.name, "steps", len(b.g.steps), "outputs", len(b.g.outputs), "manual", b.g.manual)
	return nil
}

// Invoke records the invocation of an entity inside the builder's graph and
// returns the resulting tensors in output-port order. A plain module appends
// one step and produces fresh tensors; a nested graph has its whole step
// sequence copied in and its current output tensors re-exposed. Either way
// the entity's operation mode must be nestable into the graph's mode, and a
// rejected invocation leaves the graph untouched.
func (b *Builder) Invoke(entity Module, inputs Inputs) ([]*Tensor, error) {
	if b.done {
		return nil, fmt.Errorf("graph %q: %w", b.g.name, ErrBuilderClosed)
	}
	if !NestingAllowed(b.g.mode, entity.Mode()) {
		return nil, &IncompatibleModesError{
			Graph:  b.g.name,
			Entity: entity.Name(),
			Outer:  b.g.mode,
			Inner:  entity.Mode(),
		}
	}
	if nested, ok := entity.(*Graph); ok {
		return b.invokeGraph(nested, inputs)
	}
	return b.invokeModule(entity, inputs)
}

// SetOutput binds a tensor under the given output key, inserting or
// overwriting exactly that entry. The tensor must have been produced by (or
// inherited into) the builder's graph. The first call during a context
// switches the closing behavior to manual binding.
func (b *Builder) SetOutput(name string, t *Tensor) error {
	if b.done {
		return fmt.Errorf("graph %q: %w", b.g.name, ErrBuilderClosed)
	}
	if _, ok := b.g.index[t.ID()]; !ok {
		return &NotFoundError{Label: "tensor", Key: t.UniqueName(), Scope: b.g.name}
	}
	for i := range b.manual {
		if b.manual[i].name == name {
			b.manual[i].tensor = t
			return nil
		}
	}
	b.manual = append(b.manual, outputEntry{name: name, tensor: t})
	return nil
}

// invokeModule appends one step for a plain module. All validation happens
// before the first mutation so a failed invoke is atomic.
func (b *Builder) invokeModule(m Module, inputs Inputs) ([]*Tensor, error) {
	g := b.g
	if err := g.checkModuleName(m); err != nil {
		return nil, err
	}
	declared := m.InputPorts()
	if err := unknownKeys(inputs, func(name string) bool { return declared.Has(name) }, "input port", m.Name()); err != nil {
		return nil, err
	}

	index := len(g.steps)
	g.steps = append(g.steps, Step{Index: index, Entity: m, Inputs: inputs.clone()})
	g.registerModule(m)

	outPorts := m.OutputPorts()
	row := make([]*Tensor, len(outPorts))
	for i, port := range outPorts {
		t := newTensor(m.Name(), index, port)
		g.index[t.ID()] = PortRef{Step: index, Port: port.Name}
		row[i] = t
	}
	g.produced = append(g.produced, row)

	// Declared input ports left unsupplied become inputs of the graph.
	for _, port := range declared {
		if _, ok := inputs[port.Name]; !ok {
			g.bindInput(port.Name, port.Type, PortRef{Step: index, Port: port.Name})
		}
	}

	g.log.V(1).Info("step appended",
		"graph", g.name, "step", index, "module", m.Name(), "outputs", len(row))
	return row, nil
}

// invokeGraph copies the inner graph's topology into the builder's graph:
// steps appended in order with renumbered indices, produced tensors and
// modules merged by reference, supplied inputs substituted into the copied
// steps and unsupplied inner inputs propagated outward. The inner graph's
// current output tensors are returned as-is; nesting never fabricates
// tensors.
func (b *Builder) invokeGraph(inner *Graph, inputs Inputs) ([]*Tensor, error) {
	g := b.g
	if inner.open {
		return nil, fmt.Errorf("cannot nest graph %q while its own context is open: %w", inner.name, ErrGraphOpen)
	}
	err := unknownKeys(inputs, func(name string) bool {
		_, lookupErr := inner.Input(name)
		return lookupErr == nil
	}, "graph input", inner.name)
	for _, name := range inner.order {
		if conflict := g.checkModuleName(inner.modules[name]); conflict != nil {
			err = multierr.Append(err, conflict)
		}
	}
	if err != nil {
		return nil, err
	}

	base := len(g.steps)
	for _, s := range inner.steps {
		g.steps = append(g.steps, Step{Index: base + s.Index, Entity: s.Entity, Inputs: s.Inputs.clone()})
	}
	for i, row := range inner.produced {
		copied := make([]*Tensor, len(row))
		copy(copied, row)
		g.produced = append(g.produced, copied)
		for _, t := range copied {
			g.index[t.ID()] = PortRef{Step: base + i, Port: t.Name()}
		}
	}
	for _, name := range inner.order {
		g.registerModule(inner.modules[name])
	}
	for _, in := range inner.inputs {
		t, supplied := inputs[in.name]
		for _, ref := range in.consumers {
			if supplied {
				g.steps[base+ref.Step].Inputs[ref.Port] = t
			} else {
				g.bindInput(in.name, in.typ, PortRef{Step: base + ref.Step, Port: ref.Port})
			}
		}
	}

	g.log.V(1).Info("graph nested",
		"graph", g.name, "nested", inner.name, "copied_steps", len(inner.steps))
	return inner.OutputTensors(), nil
}

// unknownKeys validates the supplied input names against a membership
// predicate, aggregating one NotFoundError per unknown key in sorted order.
func unknownKeys(inputs Inputs, known func(string) bool, label, scope string) error {
	var names []string
	for name := range inputs {
		if !known(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	var err error
	for _, name := range names {
		err = multierr.Append(err, &NotFoundError{Label: label, Key: name, Scope: scope})
	}
	return err
}
