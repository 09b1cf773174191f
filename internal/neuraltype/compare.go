package neuraltype

// ComparisonResult classifies how two type descriptors relate.
type ComparisonResult int

// Comparison outcomes of Compare(a, b).
const (
	// Same: identical element kinds and matching axes.
	Same ComparisonResult = iota
	// Less: a's element kind refines b's (every a is a b).
	Less
	// Greater: b's element kind refines a's.
	Greater
	// TransposeSame: same element kind, same axis kinds in a different order.
	TransposeSame
	// DimIncompatible: same element kind, same axis kinds and order, but
	// mismatched fixed sizes.
	DimIncompatible
	// Incompatible: the types cannot be reconciled.
	Incompatible
)

// String returns a human-readable name for the comparison result.
func (r ComparisonResult) String() string {
	switch r {
	case Same:
		return "same"
	case Less:
		return "less"
	case Greater:
		return "greater"
	case TransposeSame:
		return "transpose_same"
	case DimIncompatible:
		return "dim_incompatible"
	case Incompatible:
		return "incompatible"
	default:
		return "unknown"
	}
}

// Axis list classification codes used internally by Compare.
const (
	axesSame = iota
	axesSizeMismatch
	axesTransposed
	axesIncompatible
)

// Compare relates two type descriptors.
//
// An axis-less Void type is a wildcard and compares Same with anything.
// Otherwise both sides must agree on having axes: an axis-less type never
// matches an axed one. When the axes line up exactly the result is the
// element-kind comparison; reordered axis kinds yield TransposeSame and
// mismatched fixed sizes yield DimIncompatible, both only when the element
// kinds are identical.
func Compare(a, b Type) ComparisonResult {
	if (a.elem == Void && a.axes == nil) || (b.elem == Void && b.axes == nil) {
		return Same
	}
	if a.axes == nil || b.axes == nil {
		if a.axes == nil && b.axes == nil {
			return compareElements(a.elem, b.elem)
		}
		return Incompatible
	}

	elem := compareElements(a.elem, b.elem)
	switch compareAxes(a.axes, b.axes) {
	case axesSame:
		return elem
	case axesSizeMismatch:
		if elem == Same {
			return DimIncompatible
		}
		return Incompatible
	case axesTransposed:
		if elem == Same {
			return TransposeSame
		}
		return Incompatible
	default:
		return Incompatible
	}
}

// Compare relates t to other; see the package-level Compare.
func (t Type) Compare(other Type) ComparisonResult {
	return Compare(t, other)
}

// compareElements relates two element kinds through the refinement hierarchy.
func compareElements(a, b ElementKind) ComparisonResult {
	switch {
	case a == b:
		return Same
	case a == Void || b == Void:
		return Same
	case a.refines(b):
		return Less
	case b.refines(a):
		return Greater
	default:
		return Incompatible
	}
}

// compareAxes classifies two axis lists of equal semantic weight. AxisAny in
// either position matches any kind; size 0 matches any size.
func compareAxes(a, b []Axis) int {
	if len(a) != len(b) {
		return axesIncompatible
	}
	sameOrder := true
	sameSizes := true
	for i := range a {
		switch {
		case a[i].Kind == AxisAny || b[i].Kind == AxisAny:
			// Wildcard position, kind and size both pass.
		case a[i].Kind != b[i].Kind:
			sameOrder = false
		case a[i].Size != 0 && b[i].Size != 0 && a[i].Size != b[i].Size:
			sameSizes = false
		}
	}
	if sameOrder && sameSizes {
		return axesSame
	}
	if sameOrder {
		return axesSizeMismatch
	}
	if sameKindCounts(a, b) {
		return axesTransposed
	}
	return axesIncompatible
}

// sameKindCounts reports whether both lists carry the same multiset of axis
// kinds.
func sameKindCounts(a, b []Axis) bool {
	counts := make(map[AxisKind]int, len(a))
	for _, ax := range a {
		counts[ax.Kind]++
	}
	for _, ax := range b {
		counts[ax.Kind]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}
