package modules

import (
	"github.com/plexus-ml/plexus/internal/graph"
	"github.com/plexus-ml/plexus/internal/neuraltype"
)

// TaylorNet is a trainable polynomial block of the given degree: it
// consumes sample positions x and produces predictions y_pred. The batch
// axis is dynamic so the net accepts any batch size.
type TaylorNet struct {
	base
	dim int
}

var _ graph.Module = (*TaylorNet)(nil)

// NewTaylorNet creates a polynomial block of degree dim.
func NewTaylorNet(dim int, opts ...Option) *TaylorNet {
	o := resolve("taylornet", opts)
	sample := func(elem neuraltype.ElementKind) neuraltype.Type {
		return neuraltype.New(elem,
			neuraltype.Axis{Kind: neuraltype.AxisBatch},
			neuraltype.Axis{Kind: neuraltype.AxisDimension, Size: 1},
		)
	}
	return &TaylorNet{
		base: base{
			name: o.name,
			mode: o.mode,
			in:   graph.Ports{{Name: "x", Type: sample(neuraltype.Channel)}},
			out:  graph.Ports{{Name: "y_pred", Type: sample(neuraltype.Prediction)}},
		},
		dim: dim,
	}
}

// Dim returns the polynomial degree.
func (m *TaylorNet) Dim() int { return m.dim }
