package graph

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// nameSeq holds one counter per kind so generated names stay readable:
// "taylornet0", "taylornet1", "neuralgraph0", ...
var nameSeq sync.Map // string -> *atomic.Int64

// DefaultName generates the next default name for the given kind. Counters
// are per kind and start at zero. Graphs and modules constructed without an
// explicit name use this.
func DefaultName(kind string) string {
	v, _ := nameSeq.LoadOrStore(kind, new(atomic.Int64))
	n := v.(*atomic.Int64).Add(1) - 1
	return fmt.Sprintf("%s%d", kind, n)
}
