// Package modules provides the tutorial module collection used to build and
// exercise neural graphs: a synthetic sine regression source, a polynomial
// block, a mean-squared-error loss and a tokenizing text data layer.
//
// Modules are immutable after construction and reusable across graphs; each
// declares its operation mode and its named, typed input and output ports.
// They carry no numeric state here, only the composition surface the graph
// engine consumes.
package modules
