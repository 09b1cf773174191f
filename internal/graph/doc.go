// Package graph implements the neural graph composition engine: modules are
// invoked inside an open construction context, each invocation appends a
// step and produces typed symbolic tensors, and whole graphs nest into other
// graphs by copying their step sequence.
//
// The engine enforces one rule at invocation time: an entity of operation
// mode I may run inside a graph of mode E iff I is Both or I equals E.
// Rejected invocations leave the graph untouched.
//
// Example:
//
//	ds := modules.NewSineDataLayer(100, 4)
//	tn := modules.NewTaylorNet(4)
//	loss := modules.NewMSELoss()
//
//	g := graph.New(graph.Training, graph.WithName("training"))
//	err := g.Compose(func(b *graph.Builder) error {
//	    xy, err := b.Invoke(ds, nil)
//	    if err != nil {
//	        return err
//	    }
//	    pred, err := b.Invoke(tn, graph.Inputs{"x": xy[0]})
//	    if err != nil {
//	        return err
//	    }
//	    _, err = b.Invoke(loss, graph.Inputs{"predictions": pred[0], "target": xy[1]})
//	    return err
//	})
//
// After Compose returns the graph's output table holds every produced
// tensor keyed by its port name, unless Builder.SetOutput bound a manual
// table. The graph itself satisfies Module and can be invoked inside
// another graph, which copies its steps and re-exposes its output tensors.
//
// Construction is single-threaded: a graph must not be mutated from more
// than one goroutine.
package graph
