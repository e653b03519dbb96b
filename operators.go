package nn

import (
	"gonum.org/v1/gonum/mat"
)

// funcNode is the result of an operation over other nodes. Its value is
// computed eagerly at construction; its back function maps the downstream
// gradient to one gradient per operand.
type funcNode struct {
	data *mat.Dense
	ins  []Node
	back func(grad *mat.Dense) []*mat.Dense
}

func (f *funcNode) Data() *mat.Dense {
	return f.data
}

func (f *funcNode) parents() []Node {
	return f.ins
}

func (f *funcNode) backward(grad *mat.Dense) []*mat.Dense {
	return f.back(grad)
}

// DotProduct returns a batch of dot products between the rows of features
// and a single weight row. features must be (batch x n) and weights (1 x n);
// the result is (batch x 1). For a single sample both operands are row
// vectors and the result holds one number, extractable with AsScalar.
func DotProduct(weights, features Node) Node {
	w, x := weights.Data(), features.Data()
	wr, wc := w.Dims()
	_, xc := x.Dims()
	if wr != 1 || wc != xc {
		panic(ShapeError{"DotProduct", []string{shape(w), shape(x)}})
	}

	var out mat.Dense
	out.Mul(x, w.T())

	return &funcNode{
		data: &out,
		ins:  []Node{weights, features},
		back: func(grad *mat.Dense) []*mat.Dense {
			var dw, dx mat.Dense
			dw.Mul(grad.T(), x) // (1 x batch) * (batch x n)
			dx.Mul(grad, w)     // (batch x 1) * (1 x n)
			return []*mat.Dense{&dw, &dx}
		},
	}
}

// Linear applies a linear transform to a batch of inputs: x (batch x in)
// times weights (in x out), giving (batch x out).
func Linear(x, weights Node) Node {
	xd, wd := x.Data(), weights.Data()
	_, xc := xd.Dims()
	wr, _ := wd.Dims()
	if xc != wr {
		panic(ShapeError{"Linear", []string{shape(xd), shape(wd)}})
	}

	var out mat.Dense
	out.Mul(xd, wd)

	return &funcNode{
		data: &out,
		ins:  []Node{x, weights},
		back: func(grad *mat.Dense) []*mat.Dense {
			var dx, dw mat.Dense
			dx.Mul(grad, wd.T())
			dw.Mul(xd.T(), grad)
			return []*mat.Dense{&dx, &dw}
		},
	}
}

// AddBias adds a (1 x n) bias row to every row of x (batch x n).
func AddBias(x, bias Node) Node {
	xd, bd := x.Data(), bias.Data()
	xr, xc := xd.Dims()
	br, bc := bd.Dims()
	if br != 1 || bc != xc {
		panic(ShapeError{"AddBias", []string{shape(xd), shape(bd)}})
	}

	out := mat.NewDense(xr, xc, nil)
	for i := 0; i < xr; i++ {
		for j := 0; j < xc; j++ {
			out.Set(i, j, xd.At(i, j)+bd.At(0, j))
		}
	}

	return &funcNode{
		data: out,
		ins:  []Node{x, bias},
		back: func(grad *mat.Dense) []*mat.Dense {
			db := mat.NewDense(1, xc, nil)
			for j := 0; j < xc; j++ {
				var sum float64
				for i := 0; i < xr; i++ {
					sum += grad.At(i, j)
				}
				db.Set(0, j, sum)
			}
			return []*mat.Dense{mat.DenseCopyOf(grad), db}
		},
	}
}

// Add sums two nodes of identical shape elementwise.
func Add(a, b Node) Node {
	ad, bd := a.Data(), b.Data()
	mustMatch("Add", ad, bd)

	var out mat.Dense
	out.Add(ad, bd)

	return &funcNode{
		data: &out,
		ins:  []Node{a, b},
		back: func(grad *mat.Dense) []*mat.Dense {
			return []*mat.Dense{mat.DenseCopyOf(grad), mat.DenseCopyOf(grad)}
		},
	}
}

// ReLU rectifies a node elementwise: max(0, x).
func ReLU(x Node) Node {
	xd := x.Data()
	r, c := xd.Dims()

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := xd.At(i, j); v > 0 {
				out.Set(i, j, v)
			}
		}
	}

	return &funcNode{
		data: out,
		ins:  []Node{x},
		back: func(grad *mat.Dense) []*mat.Dense {
			dx := mat.NewDense(r, c, nil)
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					if xd.At(i, j) > 0 {
						dx.Set(i, j, grad.At(i, j))
					}
				}
			}
			return []*mat.Dense{dx}
		},
	}
}
