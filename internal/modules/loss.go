package modules

import (
	"github.com/plexus-ml/plexus/internal/graph"
	"github.com/plexus-ml/plexus/internal/neuraltype"
)

// MSELoss computes mean squared error between predictions and targets. Its
// single output is an axis-less scalar loss.
type MSELoss struct {
	base
}

var _ graph.Module = (*MSELoss)(nil)

// NewMSELoss creates a mean-squared-error loss module.
func NewMSELoss(opts ...Option) *MSELoss {
	o := resolve("mseloss", opts)
	sample := func(elem neuraltype.ElementKind) neuraltype.Type {
		return neuraltype.New(elem,
			neuraltype.Axis{Kind: neuraltype.AxisBatch},
			neuraltype.Axis{Kind: neuraltype.AxisDimension, Size: 1},
		)
	}
	return &MSELoss{
		base: base{
			name: o.name,
			mode: o.mode,
			in: graph.Ports{
				{Name: "predictions", Type: sample(neuraltype.Prediction)},
				{Name: "target", Type: sample(neuraltype.Labels)},
			},
			out: graph.Ports{{Name: "loss", Type: neuraltype.New(neuraltype.Loss)}},
		},
	}
}
