// Copyright 2025 Plexus ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the public API for composing neural graphs in the
// Plexus ML framework.
//
// A neural graph is built by invoking modules inside an open construction
// context. Every invocation appends a step and produces typed symbolic
// tensors; whole graphs nest into other graphs, subject to the operation
// mode rule: an entity of mode I nests into a graph of mode E iff I is Both
// or I equals E.
//
// Example:
//
//	import (
//	    "github.com/plexus-ml/plexus/graph"
//	    "github.com/plexus-ml/plexus/modules"
//	)
//
//	func main() {
//	    ds := modules.NewSineDataLayer(100, 4)
//	    tn := modules.NewTaylorNet(4)
//	    loss := modules.NewMSELoss()
//
//	    g := graph.New(graph.Training)
//	    err := g.Compose(func(b *graph.Builder) error {
//	        xy, err := b.Invoke(ds, nil)
//	        if err != nil {
//	            return err
//	        }
//	        pred, err := b.Invoke(tn, graph.Inputs{"x": xy[0]})
//	        if err != nil {
//	            return err
//	        }
//	        _, err = b.Invoke(loss, graph.Inputs{"predictions": pred[0], "target": xy[1]})
//	        return err
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Print(g.Summary())
//	}
package graph

import (
	"github.com/plexus-ml/plexus/internal/graph"
)

// OperationMode declares the execution phase of a module or graph.
type OperationMode = graph.OperationMode

// Operation modes.
const (
	Both      OperationMode = graph.Both
	Training  OperationMode = graph.Training
	Inference OperationMode = graph.Inference
)

// ParseOperationMode converts a mode name back to an OperationMode.
func ParseOperationMode(s string) (OperationMode, error) {
	return graph.ParseOperationMode(s)
}

// NestingAllowed reports whether an entity of mode inner may be invoked
// inside a graph of mode outer.
func NestingAllowed(outer, inner OperationMode) bool {
	return graph.NestingAllowed(outer, inner)
}

// Graph is a composition of modules: an ordered step sequence plus derived
// input and output bindings.
type Graph = graph.Graph

// Builder is an open construction context for one graph.
type Builder = graph.Builder

// Module is anything that can be invoked inside a graph.
type Module = graph.Module

// Port is a named, typed slot on a module or graph.
type Port = graph.Port

// Ports is an ordered port collection.
type Ports = graph.Ports

// Inputs names the tensors supplied to an invocation, keyed by port name.
type Inputs = graph.Inputs

// Tensor is the symbolic, typed result of an invocation.
type Tensor = graph.Tensor

// Step records one invocation inside a graph.
type Step = graph.Step

// PortRef identifies one port of one step within a graph's sequence.
type PortRef = graph.PortRef

// GraphInput is one bound input of a graph.
type GraphInput = graph.GraphInput

// Option configures a Graph at construction.
type Option = graph.Option

// New creates an empty graph with the given operation mode.
func New(mode OperationMode, opts ...Option) *Graph {
	return graph.New(mode, opts...)
}

// WithName sets an explicit graph name.
func WithName(name string) Option {
	return graph.WithName(name)
}

// WithLogger routes construction-time logging through the given logger.
var WithLogger = graph.WithLogger

// Config is the serializable topology of a graph.
type Config = graph.Config

// StepConfig is one recorded invocation inside a Config.
type StepConfig = graph.StepConfig

// OutputConfig is one manually bound output entry inside a Config.
type OutputConfig = graph.OutputConfig

// TensorRef names a tensor inside a Config by producing step and port.
type TensorRef = graph.TensorRef

// ReadConfig parses a YAML graph config.
var ReadConfig = graph.ReadConfig

// FromConfig rebuilds a graph by replaying a config against caller-supplied
// module instances.
var FromConfig = graph.FromConfig

// Sentinel errors; typed errors match them through errors.Is.
var (
	ErrNotFound          = graph.ErrNotFound
	ErrIncompatibleModes = graph.ErrIncompatibleModes
	ErrGraphOpen         = graph.ErrGraphOpen
	ErrBuilderClosed     = graph.ErrBuilderClosed
	ErrNameConflict      = graph.ErrNameConflict
)

// IncompatibleModesError reports a rejected invocation with both modes.
type IncompatibleModesError = graph.IncompatibleModesError

// NotFoundError reports a failed lookup of a named thing.
type NotFoundError = graph.NotFoundError

// NameConflictError reports a module name bound to a different instance.
type NameConflictError = graph.NameConflictError

// IsNotFound reports whether err is a missed lookup.
var IsNotFound = graph.IsNotFound
