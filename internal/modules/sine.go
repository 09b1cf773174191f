package modules

import (
	"github.com/plexus-ml/plexus/internal/graph"
	"github.com/plexus-ml/plexus/internal/neuraltype"
)

// SineDataLayer is a synthetic regression source: n samples of a sine curve
// served in batches. It has no inputs and two outputs, the sample positions
// x and the function values y.
type SineDataLayer struct {
	base
	n         int
	batchSize int
}

var _ graph.Module = (*SineDataLayer)(nil)

// NewSineDataLayer creates a sine data source with n samples per epoch and
// the given batch size.
func NewSineDataLayer(n, batchSize int, opts ...Option) *SineDataLayer {
	o := resolve("sinedatalayer", opts)
	sample := func(elem neuraltype.ElementKind) neuraltype.Type {
		return neuraltype.New(elem,
			neuraltype.Axis{Kind: neuraltype.AxisBatch, Size: batchSize},
			neuraltype.Axis{Kind: neuraltype.AxisDimension, Size: 1},
		)
	}
	return &SineDataLayer{
		base: base{
			name: o.name,
			mode: o.mode,
			out: graph.Ports{
				{Name: "x", Type: sample(neuraltype.Channel)},
				{Name: "y", Type: sample(neuraltype.Labels)},
			},
		},
		n:         n,
		batchSize: batchSize,
	}
}

// Samples returns the number of samples per epoch.
func (m *SineDataLayer) Samples() int { return m.n }

// BatchSize returns the configured batch size.
func (m *SineDataLayer) BatchSize() int { return m.batchSize }

// Batches returns the number of full batches per epoch.
func (m *SineDataLayer) Batches() int { return m.n / m.batchSize }
