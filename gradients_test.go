package nn

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// numericGradient estimates d f / d p by central differences, rebuilding the
// graph through f for every probe.
func numericGradient(f func() Node, p *Parameter) *mat.Dense {
	const eps = 1e-6

	r, c := p.Data().Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			orig := p.Data().At(i, j)

			p.Data().Set(i, j, orig+eps)
			plus := AsScalar(f())
			p.Data().Set(i, j, orig-eps)
			minus := AsScalar(f())
			p.Data().Set(i, j, orig)

			out.Set(i, j, (plus-minus)/(2*eps))
		}
	}

	return out
}

func checkGradients(t *testing.T, f func() Node, params []*Parameter) {
	t.Helper()

	grads := Gradients(f(), params)
	for pi, p := range params {
		want := numericGradient(f, p)
		got := grads[pi].Data()

		r, c := p.Data().Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if diff := math.Abs(got.At(i, j) - want.At(i, j)); diff > 1e-4 {
					t.Fatalf("param %d entry (%d,%d): gradient %v, numeric estimate %v",
						pi, i, j, got.At(i, j), want.At(i, j))
				}
			}
		}
	}
}

func TestGradientsTwoLayerSquareLoss(t *testing.T) {
	Seed(7)
	w1 := NewParameter(3, 4)
	b1 := NewParameter(1, 4)
	w2 := NewParameter(4, 1)
	b2 := NewParameter(1, 1)

	x := NewConstant(mat.NewDense(2, 3, []float64{
		0.5, -1.2, 0.3,
		1.1, 0.4, -0.7,
	}))
	y := NewConstant(mat.NewDense(2, 1, []float64{0.2, -0.9}))

	f := func() Node {
		hidden := ReLU(AddBias(Linear(x, w1), b1))
		return SquareLoss(AddBias(Linear(hidden, w2), b2), y)
	}

	checkGradients(t, f, []*Parameter{w1, b1, w2, b2})
}

func TestGradientsSoftmaxLoss(t *testing.T) {
	Seed(11)
	w := NewParameter(3, 4)
	b := NewParameter(1, 4)

	x := NewConstant(mat.NewDense(2, 3, []float64{
		0.9, 0.1, -0.4,
		-0.2, 0.8, 0.6,
	}))
	y := NewConstant(mat.NewDense(2, 4, []float64{
		0, 1, 0, 0,
		0, 0, 0, 1,
	}))

	f := func() Node {
		return SoftmaxLoss(AddBias(Linear(x, w), b), y)
	}

	checkGradients(t, f, []*Parameter{w, b})
}

func TestGradientsDotProduct(t *testing.T) {
	Seed(13)
	w := NewParameter(1, 5)
	x := NewConstant(mat.NewDense(1, 5, []float64{0.3, -0.8, 1.2, 0.05, -0.4}))

	// Square the score so the loss is scalar and depends smoothly on w.
	f := func() Node {
		score := DotProduct(w, x)
		return SquareLoss(score, ConstantScalar(1))
	}

	checkGradients(t, f, []*Parameter{w})
}

func TestGradientsAccumulateThroughSharedParameter(t *testing.T) {
	Seed(17)
	wx := NewParameter(4, 3)
	wh := NewParameter(3, 3)
	wf := NewParameter(3, 2)

	steps := []*Constant{
		NewConstant(mat.NewDense(2, 4, []float64{1, 0, 0, 0, 0, 1, 0, 0})),
		NewConstant(mat.NewDense(2, 4, []float64{0, 0, 1, 0, 0, 0, 0, 1})),
		NewConstant(mat.NewDense(2, 4, []float64{0, 1, 0, 0, 1, 0, 0, 0})),
	}
	y := NewConstant(mat.NewDense(2, 2, []float64{1, 0, 0, 1}))

	// wx feeds every step, so its gradient must accumulate across the
	// whole unrolled recurrence.
	f := func() Node {
		h := Linear(steps[0], wx)
		for _, x := range steps[1:] {
			h = ReLU(Add(Linear(x, wx), Linear(h, wh)))
		}
		return SoftmaxLoss(Linear(h, wf), y)
	}

	checkGradients(t, f, []*Parameter{wx, wh, wf})
}

func TestGradientsUnusedParameterIsZero(t *testing.T) {
	Seed(19)
	used := NewParameter(1, 2)
	unused := NewParameter(2, 2)

	x := ConstantVector([]float64{0.4, -0.6})
	loss := SquareLoss(DotProduct(used, x), ConstantScalar(0))

	grads := Gradients(loss, []*Parameter{used, unused})

	if r, c := grads[1].Data().Dims(); r != 2 || c != 2 {
		t.Fatalf("expected 2x2 zero gradient, got %dx%d", r, c)
	}
	if norm := mat.Norm(grads[1].Data(), 1); norm != 0 {
		t.Fatalf("expected zero gradient for unused parameter, got norm %v", norm)
	}
}

func TestGradientsPanicsOnNonScalarLoss(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrNotScalar {
			t.Fatalf("expected ErrNotScalar panic, got %v", r)
		}
	}()

	Seed(23)
	p := NewParameter(1, 2)
	Gradients(Add(p, ConstantVector([]float64{1, 1})), []*Parameter{p})
}
