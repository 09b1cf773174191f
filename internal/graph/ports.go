package graph

import "github.com/plexus-ml/plexus/internal/neuraltype"

// Port is a named, typed slot on a module or graph through which tensors
// flow in or out.
type Port struct {
	Name string
	Type neuraltype.Type
}

// Ports is an ordered port collection. Order matters: invocation results are
// returned in output-port declaration order.
type Ports []Port

// Get returns the port with the given name.
func (p Ports) Get(name string) (Port, bool) {
	for _, port := range p {
		if port.Name == name {
			return port, true
		}
	}
	return Port{}, false
}

// Has reports whether a port with the given name exists.
func (p Ports) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Names returns the port names in declaration order.
func (p Ports) Names() []string {
	names := make([]string, len(p))
	for i, port := range p {
		names[i] = port.Name
	}
	return names
}

// Clone returns a copy of the collection.
func (p Ports) Clone() Ports {
	if p == nil {
		return nil
	}
	cloned := make(Ports, len(p))
	copy(cloned, p)
	return cloned
}

// Module is anything that can be invoked inside a graph: a concrete neural
// module or a *Graph nested as one. Implementations are immutable after
// construction and may be invoked from any number of graphs.
type Module interface {
	// Name returns the module name, unique within any graph using it.
	Name() string

	// Mode returns the declared operation mode.
	Mode() OperationMode

	// InputPorts returns the named, typed input slots.
	InputPorts() Ports

	// OutputPorts returns the named, typed output slots, in the order
	// invocation results are produced.
	OutputPorts() Ports
}
