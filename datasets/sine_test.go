package datasets

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
)

func TestSineSamplesTheTarget(t *testing.T) {
	data := NewSine(50, 10, 1)

	it := data.IterateOnce(10)
	for {
		x, y, ok := it.Next()
		if !ok {
			break
		}

		r, _ := x.Data().Dims()
		for i := 0; i < r; i++ {
			xi := x.Data().At(i, 0)
			if xi < -2*math.Pi || xi > 2*math.Pi {
				t.Fatalf("x=%v outside [-2pi, 2pi]", xi)
			}
			if got := y.Data().At(i, 0); got != math.Sin(xi) {
				t.Fatalf("y=%v for x=%v, expected sin(x)=%v", got, xi, math.Sin(xi))
			}
		}
	}
}

// sinScorer predicts sin(x) exactly.
type sinScorer struct{}

func (sinScorer) Run(x nn.Node) nn.Node {
	r, _ := x.Data().Dims()
	out := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		out.Set(i, 0, math.Sin(x.Data().At(i, 0)))
	}
	return nn.NewConstant(out)
}

func TestSineValidationMSEOfExactModelIsZero(t *testing.T) {
	data := NewSine(20, 30, 4)

	if mse := data.ValidationMSE(sinScorer{}); mse != 0 {
		t.Fatalf("exact model has mse %v, expected 0", mse)
	}
}
