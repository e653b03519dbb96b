package models_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/datasets"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/models"
)

func TestDigitsRunProducesLogitsPerClass(t *testing.T) {
	nn.Seed(6)
	m := models.NewDigitClassification()

	x := nn.NewConstant(mat.NewDense(3, models.DigitFeatures, nil))
	out := m.Run(x)

	if r, c := out.Data().Dims(); r != 3 || c != models.DigitClasses {
		t.Fatalf("expected 3x%d logits, got %dx%d", models.DigitClasses, r, c)
	}
}

func TestDigitsStopsAtValidationTarget(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping digit training in short mode")
	}

	nn.Seed(3)
	data := datasets.SyntheticDigits(400, 100, 9)

	m := models.NewDigitClassification()
	data.SetModel(m)

	var epochs int
	m.Status = func(epoch int, accuracy float64) { epochs = epoch }

	m.Train(data)

	if epochs > 2000 {
		t.Fatalf("ran %d epochs, budget is 2000", epochs)
	}
	if acc := data.ValidationAccuracy(); acc < 0.97 {
		t.Fatalf("training returned at accuracy %v, threshold is 0.97", acc)
	}
}
