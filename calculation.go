package nn

import (
	"gonum.org/v1/gonum/mat"
)

// AsScalar returns the numeric value of a single-valued node. It panics with
// ErrNotScalar if the node does not have shape 1x1, and ErrNilNode if the
// node is nil.
func AsScalar(n Node) float64 {
	if n == nil {
		panic(ErrNilNode)
	}

	r, c := n.Data().Dims()
	if r != 1 || c != 1 {
		panic(ErrNotScalar)
	}

	return n.Data().At(0, 0)
}

// Gradients computes the derivative of loss with respect to each of the
// given parameters by walking the recorded graph backwards. The result holds
// one Constant per parameter, in order, each with its parameter's shape.
// Parameters that do not contribute to the loss receive a zero gradient.
//
// loss must be single-valued; Gradients panics with ErrNotScalar otherwise,
// and with ErrNoParams if params is empty.
func Gradients(loss Node, params []*Parameter) []*Constant {
	if loss == nil {
		panic(ErrNilNode)
	}
	if r, c := loss.Data().Dims(); r != 1 || c != 1 {
		panic(ErrNotScalar)
	}
	if len(params) == 0 {
		panic(ErrNoParams)
	}

	// Topological order over the subgraph reachable from loss. order ends up
	// with every parent preceding its children, so iterating it in reverse
	// visits each node only after all of its consumers.
	var order []Node
	visited := make(map[Node]bool)

	var visit func(n Node)
	visit = func(n Node) {
		if visited[n] {
			return
		}
		visited[n] = true

		for _, in := range n.parents() {
			visit(in)
		}

		order = append(order, n)
	}
	visit(loss)

	grads := make(map[Node]*mat.Dense, len(order))
	grads[loss] = mat.NewDense(1, 1, []float64{1})

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		ins := n.parents()
		if len(ins) == 0 {
			continue
		}

		backs := n.backward(grads[n])
		for j, in := range ins {
			if acc := grads[in]; acc != nil {
				acc.Add(acc, backs[j])
			} else {
				grads[in] = backs[j]
			}
		}
	}

	out := make([]*Constant, len(params))
	for i, p := range params {
		g := grads[p]
		if g == nil {
			r, c := p.data.Dims()
			g = mat.NewDense(r, c, nil)
		}
		out[i] = &Constant{data: g}
	}

	return out
}
