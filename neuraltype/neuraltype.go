// Copyright 2025 Plexus ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package neuraltype provides the public API for the tensor type descriptors
// carried by graph ports and tensors.
//
// A Type is an ordered axis list plus an element kind drawn from a small
// refinement hierarchy. Compare relates two descriptors:
//
//	x := neuraltype.New(neuraltype.Channel,
//	    neuraltype.Axis{Kind: neuraltype.AxisBatch},
//	    neuraltype.Axis{Kind: neuraltype.AxisDimension, Size: 4},
//	)
//	if x.Compare(other) != neuraltype.Same {
//	    // ports disagree
//	}
package neuraltype

import (
	"github.com/plexus-ml/plexus/internal/neuraltype"
)

// Type is an immutable tensor type descriptor.
type Type = neuraltype.Type

// Axis describes a single tensor axis; size 0 is dynamic.
type Axis = neuraltype.Axis

// AxisKind categorizes one axis of a tensor type.
type AxisKind = neuraltype.AxisKind

// Axis kinds.
const (
	AxisAny       AxisKind = neuraltype.AxisAny
	AxisBatch     AxisKind = neuraltype.AxisBatch
	AxisTime      AxisKind = neuraltype.AxisTime
	AxisDimension AxisKind = neuraltype.AxisDimension
	AxisChannel   AxisKind = neuraltype.AxisChannel
	AxisHeight    AxisKind = neuraltype.AxisHeight
	AxisWidth     AxisKind = neuraltype.AxisWidth
)

// ElementKind identifies what the elements of a tensor represent.
type ElementKind = neuraltype.ElementKind

// Element kinds. Void is a wildcard; Prediction refines Labels.
const (
	Void       ElementKind = neuraltype.Void
	Element    ElementKind = neuraltype.Element
	Channel    ElementKind = neuraltype.Channel
	Labels     ElementKind = neuraltype.Labels
	Prediction ElementKind = neuraltype.Prediction
	Loss       ElementKind = neuraltype.Loss
	TokenIndex ElementKind = neuraltype.TokenIndex
	Length     ElementKind = neuraltype.Length
)

// ComparisonResult classifies how two type descriptors relate.
type ComparisonResult = neuraltype.ComparisonResult

// Comparison outcomes.
const (
	Same            ComparisonResult = neuraltype.Same
	Less            ComparisonResult = neuraltype.Less
	Greater         ComparisonResult = neuraltype.Greater
	TransposeSame   ComparisonResult = neuraltype.TransposeSame
	DimIncompatible ComparisonResult = neuraltype.DimIncompatible
	Incompatible    ComparisonResult = neuraltype.Incompatible
)

// New creates a type descriptor from an element kind and an axis list.
func New(elem ElementKind, axes ...Axis) Type {
	return neuraltype.New(elem, axes...)
}

// Compare relates two type descriptors.
func Compare(a, b Type) ComparisonResult {
	return neuraltype.Compare(a, b)
}
