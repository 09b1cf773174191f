// Copyright 2025 Plexus ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package modules provides the tutorial module collection for building
// neural graphs: a sine regression source, a polynomial block, an MSE loss
// and a tokenizing text data layer.
package modules

import (
	"github.com/plexus-ml/plexus/internal/modules"
	"github.com/plexus-ml/plexus/internal/tokenizer"
)

// Option configures a module at construction.
type Option = modules.Option

// WithName sets an explicit module name.
var WithName = modules.WithName

// WithMode restricts the module to one execution phase.
var WithMode = modules.WithMode

// SineDataLayer is a synthetic sine regression source.
type SineDataLayer = modules.SineDataLayer

// NewSineDataLayer creates a sine data source with n samples per epoch and
// the given batch size.
func NewSineDataLayer(n, batchSize int, opts ...Option) *SineDataLayer {
	return modules.NewSineDataLayer(n, batchSize, opts...)
}

// TaylorNet is a trainable polynomial block.
type TaylorNet = modules.TaylorNet

// NewTaylorNet creates a polynomial block of degree dim.
func NewTaylorNet(dim int, opts ...Option) *TaylorNet {
	return modules.NewTaylorNet(dim, opts...)
}

// MSELoss computes mean squared error between predictions and targets.
type MSELoss = modules.MSELoss

// NewMSELoss creates a mean-squared-error loss module.
func NewMSELoss(opts ...Option) *MSELoss {
	return modules.NewMSELoss(opts...)
}

// TextDataLayer serves a tokenized corpus in fixed-length sequences.
type TextDataLayer = modules.TextDataLayer

// NewTextDataLayer tokenizes corpus with tok and chunks it into batchSize
// sequences of seqLen tokens.
func NewTextDataLayer(corpus string, seqLen, batchSize int, tok tokenizer.Tokenizer, opts ...Option) (*TextDataLayer, error) {
	return modules.NewTextDataLayer(corpus, seqLen, batchSize, tok, opts...)
}
