// Package neuraltype defines the type descriptors carried by graph ports and
// tensors: an optional ordered list of axes plus an element kind drawn from a
// small refinement hierarchy.
package neuraltype

import (
	"fmt"
	"strings"
)

// AxisKind categorizes one axis of a tensor type.
type AxisKind int

// Supported axis kinds. AxisAny matches any kind during comparison.
const (
	AxisAny AxisKind = iota
	AxisBatch
	AxisTime
	AxisDimension
	AxisChannel
	AxisHeight
	AxisWidth
)

// String returns a human-readable name for the axis kind.
func (k AxisKind) String() string {
	switch k {
	case AxisAny:
		return "any"
	case AxisBatch:
		return "batch"
	case AxisTime:
		return "time"
	case AxisDimension:
		return "dimension"
	case AxisChannel:
		return "channel"
	case AxisHeight:
		return "height"
	case AxisWidth:
		return "width"
	default:
		return "unknown"
	}
}

// Axis describes a single tensor axis. Size 0 means the axis is dynamic and
// matches any size during comparison.
type Axis struct {
	Kind AxisKind
	Size int
}

// String returns the axis kind, with the size appended when fixed.
func (a Axis) String() string {
	if a.Size == 0 {
		return a.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", a.Kind, a.Size)
}

// ElementKind identifies what the elements of a tensor represent.
//
// Kinds form a small refinement hierarchy: Prediction refines Labels, and
// every concrete kind refines Element. Void is a wildcard that compares Same
// with everything.
type ElementKind int

// Supported element kinds.
const (
	Void ElementKind = iota
	Element
	Channel
	Labels
	Prediction
	Loss
	TokenIndex
	Length
)

// String returns a human-readable name for the element kind.
func (k ElementKind) String() string {
	switch k {
	case Void:
		return "void"
	case Element:
		return "element"
	case Channel:
		return "channel"
	case Labels:
		return "labels"
	case Prediction:
		return "prediction"
	case Loss:
		return "loss"
	case TokenIndex:
		return "token_index"
	case Length:
		return "length"
	default:
		return "unknown"
	}
}

// parent returns the kind this kind refines. The second result is false for
// hierarchy roots (Element, Void).
func (k ElementKind) parent() (ElementKind, bool) {
	switch k {
	case Channel, Labels, Loss, TokenIndex, Length:
		return Element, true
	case Prediction:
		return Labels, true
	default:
		return 0, false
	}
}

// refines reports whether k is a strict refinement of other, i.e. other
// appears somewhere on k's parent chain.
func (k ElementKind) refines(other ElementKind) bool {
	for p, ok := k.parent(); ok; p, ok = p.parent() {
		if p == other {
			return true
		}
	}
	return false
}

// Type is an immutable tensor type descriptor: an element kind plus an
// optional ordered axis list. A Type without axes describes an axis-less
// value such as a scalar loss.
//
// Example:
//
//	x := neuraltype.New(neuraltype.Channel,
//	    neuraltype.Axis{Kind: neuraltype.AxisBatch},
//	    neuraltype.Axis{Kind: neuraltype.AxisDimension, Size: 4},
//	)
//	loss := neuraltype.New(neuraltype.Loss)
type Type struct {
	axes []Axis
	elem ElementKind
}

// New creates a type descriptor from an element kind and an ordered axis
// list. The axes are copied; the returned Type never aliases the argument.
func New(elem ElementKind, axes ...Axis) Type {
	if len(axes) == 0 {
		return Type{elem: elem}
	}
	cloned := make([]Axis, len(axes))
	copy(cloned, axes)
	return Type{axes: cloned, elem: elem}
}

// Element returns the element kind.
func (t Type) Element() ElementKind {
	return t.elem
}

// Axes returns a copy of the axis list, or nil for an axis-less type.
func (t Type) Axes() []Axis {
	if t.axes == nil {
		return nil
	}
	cloned := make([]Axis, len(t.axes))
	copy(cloned, t.axes)
	return cloned
}

// Rank returns the number of axes.
func (t Type) Rank() int {
	return len(t.axes)
}

// String returns a compact description, e.g. "axes=[batch,dimension(4)] elements=channel".
func (t Type) String() string {
	if t.axes == nil {
		return fmt.Sprintf("elements=%s", t.elem)
	}
	names := make([]string, len(t.axes))
	for i, a := range t.axes {
		names[i] = a.String()
	}
	return fmt.Sprintf("axes=[%s] elements=%s", strings.Join(names, ","), t.elem)
}
