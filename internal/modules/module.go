package modules

import "github.com/plexus-ml/plexus/internal/graph"

// Option configures a module at construction.
type Option func(*options)

type options struct {
	name string
	mode graph.OperationMode
}

// WithName sets an explicit module name. Without it a default
// "<kind><counter>" name is generated.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithMode restricts the module to one execution phase. The default is
// Both. Useful for data layers that serve only one split, e.g. a training
// data layer that must never end up in an inference graph.
func WithMode(mode graph.OperationMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// resolve applies the options, falling back to a generated name of the
// given kind.
func resolve(kind string, opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = graph.DefaultName(kind)
	}
	return o
}

// base carries the Module identity shared by every concrete module. Modules
// embed it and stay immutable after construction.
type base struct {
	name string
	mode graph.OperationMode
	in   graph.Ports
	out  graph.Ports
}

// Name returns the module name.
func (m *base) Name() string { return m.name }

// Mode returns the declared operation mode.
func (m *base) Mode() graph.OperationMode { return m.mode }

// InputPorts returns the declared input ports.
func (m *base) InputPorts() graph.Ports { return m.in.Clone() }

// OutputPorts returns the declared output ports.
func (m *base) OutputPorts() graph.Ports { return m.out.Clone() }
