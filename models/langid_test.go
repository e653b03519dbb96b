package models_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/datasets"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/models"
)

// oneHotSteps builds a batch of `batch` identical words of the given length,
// stepping through the alphabet.
func oneHotSteps(batch, length int) []*nn.Constant {
	xs := make([]*nn.Constant, length)
	for step := 0; step < length; step++ {
		m := mat.NewDense(batch, models.AlphabetSize, nil)
		for i := 0; i < batch; i++ {
			m.Set(i, (step+i)%models.AlphabetSize, 1)
		}
		xs[step] = nn.NewConstant(m)
	}
	return xs
}

func TestLanguageIDRunShapeIsIndependentOfLength(t *testing.T) {
	nn.Seed(8)
	m := models.NewLanguageID()

	for _, length := range []int{1, 2, 5, 11} {
		out := m.Run(oneHotSteps(4, length))
		if r, c := out.Data().Dims(); r != 4 || c != len(models.Languages) {
			t.Fatalf("length %d: expected 4x%d scores, got %dx%d",
				length, len(models.Languages), r, c)
		}
	}
}

func TestLanguageIDTrainsToThreshold(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping language training in short mode")
	}

	nn.Seed(12)
	data := datasets.SyntheticWords(60, 4)

	m := models.NewLanguageID()
	data.SetModel(m)
	m.Train(data)

	if acc := data.ValidationAccuracy(); acc < 0.82 {
		t.Fatalf("training returned at accuracy %v, threshold is 0.82", acc)
	}
}
