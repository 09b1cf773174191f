package graph

// Inputs names the tensors supplied to an invocation, keyed by input port
// name. Declared ports left out of the map become bound inputs of the graph
// under construction.
type Inputs map[string]*Tensor

// clone returns a fresh map with the same entries. Steps always hold a
// non-nil map so that copied and original steps compare equal.
func (in Inputs) clone() Inputs {
	cloned := make(Inputs, len(in))
	for name, t := range in {
		cloned[name] = t
	}
	return cloned
}

// Step records one invocation inside a graph: which entity ran and which
// tensors were bound to its input ports. Steps are append-only; Index is the
// sequence length at append time. Nesting copies steps into the enclosing
// graph with Index renumbered to continue its sequence, keeping the same
// entity and tensor references.
type Step struct {
	Index  int
	Entity Module
	Inputs Inputs
}
