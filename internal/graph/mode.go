package graph

import "fmt"

// OperationMode declares the execution phase in which a module or graph may
// run. The zero value is Both, so entities that never state a mode nest
// anywhere.
type OperationMode int

// Supported operation modes.
const (
	Both OperationMode = iota
	Training
	Inference
)

// String returns the lowercase mode name.
func (m OperationMode) String() string {
	switch m {
	case Both:
		return "both"
	case Training:
		return "training"
	case Inference:
		return "inference"
	default:
		return fmt.Sprintf("operationmode(%d)", int(m))
	}
}

// ParseOperationMode converts a mode name back to an OperationMode.
// It accepts exactly the strings produced by String.
func ParseOperationMode(s string) (OperationMode, error) {
	switch s {
	case "both":
		return Both, nil
	case "training":
		return Training, nil
	case "inference":
		return Inference, nil
	default:
		return 0, fmt.Errorf("graph: unknown operation mode %q", s)
	}
}

// NestingAllowed reports whether an entity declaring mode inner may be
// invoked inside a graph declaring mode outer.
//
// The rule enumerates every mode pair explicitly: an inner Both nests into
// any graph, otherwise the modes must match exactly. In particular a
// training-only entity never nests into an inference or Both graph, and an
// inference-only entity never nests into a training or Both graph.
func NestingAllowed(outer, inner OperationMode) bool {
	switch outer {
	case Training:
		switch inner {
		case Training, Both:
			return true
		case Inference:
			return false
		}
	case Inference:
		switch inner {
		case Inference, Both:
			return true
		case Training:
			return false
		}
	case Both:
		switch inner {
		case Both:
			return true
		case Training, Inference:
			return false
		}
	}
	return false
}
