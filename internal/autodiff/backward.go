package autodiff

import "github.com/ember-ml/ember/internal/scalar"

// TopoSort returns a topological order of every node reachable backward
// from root along the operand relation.
//
// The order is produced by a depth-first post-order traversal: a node is
// appended only after all of its operands have been appended, so every node
// appears after everything it depends on, with root last. Visited tracking
// keys on pointer identity, so a node with fan-out greater than one appears
// exactly once.
//
// The traversal assumes the graph is acyclic, which forward construction
// guarantees (a node is always created strictly after its operands).
func TopoSort(root *scalar.Value) []*scalar.Value {
	order := make([]*scalar.Value, 0, 64)
	visited := make(map[*scalar.Value]bool)

	var visit func(*scalar.Value)
	visit = func(v *scalar.Value) {
		if visited[v] {
			return
		}
		visited[v] = true
		for _, in := range v.Inputs() {
			visit(in)
		}
		order = append(order, v)
	}
	visit(root)

	return order
}

// Backward computes the gradient of root with respect to every node
// reachable backward from it.
//
// Precondition: every reachable node other than root must have a zero
// gradient. Interior nodes are freshly built each forward pass and satisfy
// this automatically; parameter leaves must be reset between training steps
// (optim.SGD.ZeroGrad does this). Running Backward on a dirty graph would
// silently over-accumulate, so the precondition is checked and a violation
// panics instead.
//
// Algorithm: topologically order the graph, seed root's gradient with 1
// (d(root)/d(root)), then replay each node's local derivative rule in
// reverse order. The ordering guarantees that by the time a node's rule
// runs, every consumer of that node has already contributed its share, so
// each rule executes exactly once with the node's final gradient.
//
// Postcondition: for every reachable node v, v.Grad() is the exact partial
// derivative d(root.Data())/d(v.Data()) under the chain rule, summed over
// all paths from v to root.
func Backward(root *scalar.Value) {
	order := TopoSort(root)

	for _, v := range order {
		if v != root && v.Grad() != 0 {
			panic("autodiff: Backward called with nonzero gradient on " + v.String() +
				" (zero all gradients before reusing nodes in a new graph)")
		}
	}

	root.SetGrad(1)
	for i := len(order) - 1; i >= 0; i-- {
		if op := order[i].Op(); op != nil {
			op.Backward()
		}
	}
}

// ZeroGrad resets the gradient of every node reachable backward from root.
//
// Useful when a caller retains an entire graph (not just parameter leaves)
// and wants to run Backward on it again.
func ZeroGrad(root *scalar.Value) {
	for _, v := range TopoSort(root) {
		v.ZeroGrad()
	}
}
