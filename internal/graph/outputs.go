package graph

// outputEntry is one row of the bound-output table.
type outputEntry struct {
	name   string
	tensor *Tensor
}

// Output returns the bound output tensor with the given name. It works on
// open and closed graphs alike; the returned tensor's type descriptor always
// compares Same with the descriptor of its original producing port.
func (g *Graph) Output(name string) (*Tensor, error) {
	for _, e := range g.outputs {
		if e.name == name {
			return e.tensor, nil
		}
	}
	return nil, &NotFoundError{Label: "output", Key: name, Scope: g.name}
}

// OutputTensors returns the bound output tensors in table order.
func (g *Graph) OutputTensors() []*Tensor {
	tensors := make([]*Tensor, len(g.outputs))
	for i, e := range g.outputs {
		tensors[i] = e.tensor
	}
	return tensors
}

// OutputNames returns the output keys in table order.
func (g *Graph) OutputNames() []string {
	names := make([]string, len(g.outputs))
	for i, e := range g.outputs {
		names[i] = e.name
	}
	return names
}

// OutputPorts derives the graph's Module view of its bound outputs.
func (g *Graph) OutputPorts() Ports {
	ports := make(Ports, len(g.outputs))
	for i, e := range g.outputs {
		ports[i] = Port{Name: e.name, Type: e.tensor.Type()}
	}
	return ports
}

// ManuallyBound reports whether the current output table came from manual
// SetOutput assignments rather than the default recomputation.
func (g *Graph) ManuallyBound() bool {
	return g.manual
}

// recomputeOutputs rebuilds the default output table: one entry per tensor
// produced by the graph's steps, in step order then port declaration order,
// keyed by the producing port's name. A key collision falls back to the
// tensor's unique producer.step.port name. Recomputation is idempotent given
// the same step sequence.
func (g *Graph) recomputeOutputs() {
	g.outputs = g.outputs[:0]
	seen := make(map[string]bool)
	for _, row := range g.produced {
		for _, t := range row {
			key := t.Name()
			if seen[key] {
				key = t.UniqueName()
				g.log.Info("output key collision, using unique name",
					"graph", g.name, "port", t.Name(), "unique", key)
			}
			seen[key] = true
			g.outputs = append(g.outputs, outputEntry{name: key, tensor: t})
		}
	}
	g.manual = false
}

// Terminals returns the graph's terminal tensors: tensors produced by a step
// that no later step consumes as an input. Order follows the producing steps,
// then port declaration order within a step.
func (g *Graph) Terminals() []*Tensor {
	consumed := make(map[*Tensor]bool)
	for _, s := range g.steps {
		for _, t := range s.Inputs {
			consumed[t] = true
		}
	}
	var terminals []*Tensor
	for _, row := range g.produced {
		for _, t := range row {
			if !consumed[t] {
				terminals = append(terminals, t)
			}
		}
	}
	return terminals
}
