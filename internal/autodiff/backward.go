package autodiff

// Topo returns every node reachable from v in topological order: each node
// appears after all of its parents, and v itself comes last.
//
// The order is the post-order of a depth-first walk over Parents. Nodes
// reachable along several paths are visited once.
func (v *Value) Topo() []*Value {
	var topo []*Value
	visited := make(map[*Value]bool)

	var build func(*Value)
	build = func(node *Value) {
		if visited[node] {
			return
		}
		visited[node] = true
		for _, p := range node.parents {
			build(p)
		}
		topo = append(topo, node)
	}
	build(v)

	return topo
}

// Backward computes ∂v/∂n for every node n reachable from v.
//
// Algorithm:
//  1. Order the graph topologically (Topo)
//  2. Seed the gradient of v with 1
//  3. Walk the order in reverse, applying each node's backward rule
//  4. Add the gradients of this pass to the Grad of every node
//
// The pass itself starts from zero, so stored gradients never feed back into
// propagation. Calling Backward twice without ZeroGrads in between leaves
// every gradient at exactly twice its single-pass value.
func (v *Value) Backward() {
	topo := v.Topo()

	grads := make(gradients, len(topo))
	grads[v] = 1
	for i := len(topo) - 1; i >= 0; i-- {
		topo[i].propagate(grads)
	}

	for _, node := range topo {
		node.grad += grads[node]
	}
}

// ZeroGrads resets the gradient of every node reachable from v.
func (v *Value) ZeroGrads() {
	for _, node := range v.Topo() {
		node.grad = 0
	}
}
