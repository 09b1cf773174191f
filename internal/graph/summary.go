package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Summary returns a human-readable description of the graph: mode, modules,
// the step sequence with its input wiring, the bound graph inputs and the
// output table.
func (g *Graph) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "graph %q (mode=%s, modules=%d, steps=%d)\n", g.name, g.mode, len(g.modules), len(g.steps))

	if len(g.inputs) > 0 {
		sb.WriteString("inputs:\n")
		for _, in := range g.inputs {
			refs := make([]string, len(in.consumers))
			for i, ref := range in.consumers {
				refs[i] = fmt.Sprintf("%d.%s", ref.Step, ref.Port)
			}
			fmt.Fprintf(&sb, "  %s [%s] -> %s\n", in.name, in.typ, strings.Join(refs, ", "))
		}
	}

	sb.WriteString("steps:\n")
	for _, s := range g.steps {
		wires := make([]string, 0, len(s.Inputs))
		for _, port := range sortedInputPorts(s.Inputs) {
			t := s.Inputs[port]
			wires = append(wires, fmt.Sprintf("%s=%s", port, t.UniqueName()))
		}
		if len(wires) == 0 {
			fmt.Fprintf(&sb, "  %d: %s\n", s.Index, s.Entity.Name())
			continue
		}
		fmt.Fprintf(&sb, "  %d: %s(%s)\n", s.Index, s.Entity.Name(), strings.Join(wires, ", "))
	}

	if len(g.outputs) > 0 {
		binding := "default"
		if g.manual {
			binding = "manual"
		}
		fmt.Fprintf(&sb, "outputs (%s):\n", binding)
		for _, e := range g.outputs {
			fmt.Fprintf(&sb, "  %s <- %s\n", e.name, e.tensor)
		}
	}
	return sb.String()
}

func sortedInputPorts(in Inputs) []string {
	ports := make([]string, 0, len(in))
	for port := range in {
		ports = append(ports, port)
	}
	sort.Strings(ports)
	return ports
}
