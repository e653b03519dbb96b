package models_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/datasets"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/models"
)

func TestRegressionRunShape(t *testing.T) {
	nn.Seed(4)
	m := models.NewRegression()

	x := nn.NewConstant(mat.NewDense(5, 1, []float64{-3, -1, 0, 1, 3}))
	out := m.Run(x)

	if r, c := out.Data().Dims(); r != 5 || c != 1 {
		t.Fatalf("expected 5x1 predictions, got %dx%d", r, c)
	}
}

func TestRegressionFitsSine(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full regression training in short mode")
	}

	nn.Seed(42)
	data := datasets.NewSine(200, 100, 7)
	m := models.NewRegression()

	var epochs int
	m.Status = func(epoch int, loss float64) { epochs = epoch }

	m.Train(data)

	if epochs != 1000 {
		t.Fatalf("expected exactly 1000 epochs, ran %d", epochs)
	}
	if mse := data.ValidationMSE(m); mse >= 0.02 {
		t.Fatalf("held-out mse %v, expected < 0.02", mse)
	}
}
