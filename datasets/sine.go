package datasets

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/models"
)

// Sine samples y = sin(x) on [-2pi, 2pi]: evenly spaced training points plus
// a random held-out sample for measuring generalization.
type Sine struct {
	trainX, trainY [][]float64
	valX, valY     []float64
	rng            *rand.Rand
}

// NewSine returns a sine dataset with the given number of evenly spaced
// training points and uniformly drawn held-out points.
func NewSine(train, holdout int, seed int64) *Sine {
	if train < 2 {
		train = 2
	}
	rng := rand.New(rand.NewSource(seed))

	const bound = 2 * math.Pi

	trainX := make([][]float64, train)
	trainY := make([][]float64, train)
	for i := 0; i < train; i++ {
		x := -bound + 2*bound*float64(i)/float64(train-1)
		trainX[i] = []float64{x}
		trainY[i] = []float64{math.Sin(x)}
	}

	valX := make([]float64, holdout)
	valY := make([]float64, holdout)
	for i := range valX {
		x := rng.Float64()*2*bound - bound
		valX[i] = x
		valY[i] = math.Sin(x)
	}

	return &Sine{trainX: trainX, trainY: trainY, valX: valX, valY: valY, rng: rng}
}

// IterateOnce starts a fresh shuffled pass over the training points in
// batches of the given size.
func (s *Sine) IterateOnce(batchSize int) models.BatchIterator {
	return newRowIterator(s.rng, s.trainX, s.trainY, batchSize)
}

// ValidationMSE measures the model against the held-out sample, using the
// same half-squared-error mean the regression model trains on.
func (s *Sine) ValidationMSE(model Scorer) float64 {
	x := mat.NewDense(len(s.valX), 1, s.valX)
	y := mat.NewDense(len(s.valY), 1, s.valY)

	pred := model.Run(nn.NewConstant(x))
	return nn.AsScalar(nn.SquareLoss(pred, nn.NewConstant(y)))
}
