package datasets

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/CaoimhConway/NeuralNetworkFlexibility/models"
)

// Points is a two-class dataset of labeled feature vectors with labels +1
// and -1, iterated one shuffled pass at a time.
type Points struct {
	features [][]float64
	labels   [][]float64 // single-entry rows, +1 or -1
	rng      *rand.Rand
}

// NewPoints builds a dataset from feature vectors and their +1/-1 labels.
func NewPoints(features [][]float64, labels []float64, seed int64) (*Points, error) {
	if len(features) == 0 {
		return nil, errors.New("datasets: no points given")
	}
	if len(features) != len(labels) {
		return nil, errors.Errorf("datasets: %d points but %d labels", len(features), len(labels))
	}

	dim := len(features[0])
	rows := make([][]float64, len(labels))
	for i, f := range features {
		if len(f) != dim {
			return nil, errors.Errorf("datasets: point %d has %d features, expected %d", i, len(f), dim)
		}
		if labels[i] != 1 && labels[i] != -1 {
			return nil, errors.Errorf("datasets: label %d is %v, expected +1 or -1", i, labels[i])
		}
		rows[i] = []float64{labels[i]}
	}

	return &Points{
		features: features,
		labels:   rows,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// SeparablePoints generates n points of the given dimensionality that are
// linearly separable with a margin, labeled by the sign of a hidden random
// hyperplane. The perceptron training loop is guaranteed to terminate on the
// result.
func SeparablePoints(n, dim int, seed int64) *Points {
	rng := rand.New(rand.NewSource(seed))

	normal := make([]float64, dim)
	var norm float64
	for j := range normal {
		normal[j] = rng.NormFloat64()
		norm += normal[j] * normal[j]
	}
	norm = math.Sqrt(norm)

	const margin = 0.1

	features := make([][]float64, 0, n)
	labels := make([][]float64, 0, n)
	for len(features) < n {
		x := make([]float64, dim)
		var score float64
		for j := range x {
			x[j] = rng.Float64()*2 - 1
			score += normal[j] * x[j]
		}

		if math.Abs(score)/norm < margin {
			continue
		}

		label := []float64{1}
		if score < 0 {
			label[0] = -1
		}
		features = append(features, x)
		labels = append(labels, label)
	}

	return &Points{features: features, labels: labels, rng: rng}
}

// Len returns the number of points.
func (p *Points) Len() int {
	return len(p.features)
}

// IterateOnce starts a fresh shuffled pass over the points in batches of the
// given size. The perceptron iterates with a batch size of one.
func (p *Points) IterateOnce(batchSize int) models.BatchIterator {
	return newRowIterator(p.rng, p.features, p.labels, batchSize)
}

// Accuracy returns the fraction of points whose predicted class matches
// their label.
func (p *Points) Accuracy(predict func(x []float64) int) float64 {
	var correct int
	for i, f := range p.features {
		if float64(predict(f)) == p.labels[i][0] {
			correct++
		}
	}
	return float64(correct) / float64(len(p.features))
}
