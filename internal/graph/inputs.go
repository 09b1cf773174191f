package graph

import (
	"fmt"

	"github.com/plexus-ml/plexus/internal/neuraltype"
)

// PortRef identifies one port of one step within a graph's sequence.
type PortRef struct {
	Step int
	Port string
}

// GraphInput is one bound input of a graph: a named, typed slot that must be
// fed from outside, recorded with every (step, port) consumer it feeds.
// Inputs come into existence when a module is invoked without supplying one
// of its declared input ports.
type GraphInput struct {
	name      string
	typ       neuraltype.Type
	consumers []PortRef
}

// Name returns the input name.
func (in GraphInput) Name() string {
	return in.name
}

// Type returns the input's type descriptor.
func (in GraphInput) Type() neuraltype.Type {
	return in.typ
}

// Consumers returns the (step, port) pairs this input feeds.
func (in GraphInput) Consumers() []PortRef {
	refs := make([]PortRef, len(in.consumers))
	copy(refs, in.consumers)
	return refs
}

// Input returns the bound graph input with the given name.
func (g *Graph) Input(name string) (GraphInput, error) {
	for _, in := range g.inputs {
		if in.name == name {
			return in, nil
		}
	}
	return GraphInput{}, &NotFoundError{Label: "graph input", Key: name, Scope: g.name}
}

// Inputs returns the bound graph inputs in binding order.
func (g *Graph) Inputs() []GraphInput {
	ins := make([]GraphInput, len(g.inputs))
	for i, in := range g.inputs {
		ins[i] = GraphInput{name: in.name, typ: in.typ, consumers: in.Consumers()}
	}
	return ins
}

// InputPorts derives the graph's Module view of its bound inputs.
func (g *Graph) InputPorts() Ports {
	ports := make(Ports, len(g.inputs))
	for i, in := range g.inputs {
		ports[i] = Port{Name: in.name, Type: in.typ}
	}
	return ports
}

// bindInput records one unsupplied (step, port) consumer under the given
// input name. An existing entry with the same name absorbs the consumer when
// the types compare Same; otherwise the consumer is bound under its unique
// module.step.port name instead. The consuming step must already be
// appended.
func (g *Graph) bindInput(name string, typ neuraltype.Type, ref PortRef) {
	for i := range g.inputs {
		if g.inputs[i].name != name {
			continue
		}
		if neuraltype.Compare(g.inputs[i].typ, typ) == neuraltype.Same {
			g.inputs[i].consumers = append(g.inputs[i].consumers, ref)
			return
		}
		unique := fmt.Sprintf("%s.%d.%s", g.steps[ref.Step].Entity.Name(), ref.Step, ref.Port)
		g.log.Info("input name already bound with a different type, using unique name",
			"graph", g.name, "input", name, "unique", unique)
		g.inputs = append(g.inputs, GraphInput{name: unique, typ: typ, consumers: []PortRef{ref}})
		return
	}
	g.inputs = append(g.inputs, GraphInput{name: name, typ: typ, consumers: []PortRef{ref}})
}
