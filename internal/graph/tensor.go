package graph

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/plexus-ml/plexus/internal/neuraltype"
)

// Tensor is the symbolic handle produced by invoking a module: one tensor
// per output port per step. It carries the producing port's type descriptor
// and a unique identity; it holds no data and is never mutated after
// creation. The producing graph owns it, consuming steps and output tables
// only reference it.
type Tensor struct {
	id       uuid.UUID
	name     string // producing port name
	producer string // producing module name
	step     int    // step index in the producing graph
	typ      neuraltype.Type
}

// newTensor creates the tensor produced by the given module port at the
// given step.
func newTensor(producer string, step int, port Port) *Tensor {
	return &Tensor{
		id:       uuid.New(),
		name:     port.Name,
		producer: producer,
		step:     step,
		typ:      port.Type,
	}
}

// ID returns the tensor's unique identity.
func (t *Tensor) ID() uuid.UUID {
	return t.id
}

// Name returns the producing port's name.
func (t *Tensor) Name() string {
	return t.name
}

// Producer returns the producing module's name.
func (t *Tensor) Producer() string {
	return t.producer
}

// Step returns the producing step index within the graph that created the
// tensor. Graphs that inherit the tensor through nesting renumber their own
// view of the step; this value keeps referring to the original sequence.
func (t *Tensor) Step() int {
	return t.step
}

// Type returns the tensor's type descriptor, copied from the producing port.
func (t *Tensor) Type() neuraltype.Type {
	return t.typ
}

// Compare relates the tensor's type descriptor to another.
func (t *Tensor) Compare(other neuraltype.Type) neuraltype.ComparisonResult {
	return neuraltype.Compare(t.typ, other)
}

// UniqueName returns the stable producer.step.port form used when a plain
// port name collides in an output table.
func (t *Tensor) UniqueName() string {
	return fmt.Sprintf("%s.%d.%s", t.producer, t.step, t.name)
}

// String returns the unique name plus the type descriptor.
func (t *Tensor) String() string {
	return fmt.Sprintf("%s [%s]", t.UniqueName(), t.typ)
}
