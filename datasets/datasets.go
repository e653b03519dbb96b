// Package datasets supplies in-memory datasets for the models package: a
// two-class point sample for the perceptron, a sine sample for regression, a
// digit-image corpus, and a five-language word corpus. Every dataset
// shuffles its examples on each pass, and the two classification datasets
// score an attached model against a held-out validation split.
package datasets

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/models"
)

// Scorer produces raw class scores for a batch of inputs. The models in the
// models package satisfy it with their Run methods.
type Scorer interface {
	Run(x nn.Node) nn.Node
}

// SequenceScorer produces raw class scores for a batch of equal-length
// sequences.
type SequenceScorer interface {
	Run(xs []*nn.Constant) nn.Node
}

// rowIterator walks one shuffled pass over rows of features and label rows,
// building each batch's matrices only when asked for it.
type rowIterator struct {
	features [][]float64
	labels   [][]float64
	order    []int
	batch    int
	pos      int
}

func (it *rowIterator) Next() (x, y *nn.Constant, ok bool) {
	if it.pos >= len(it.order) {
		return nil, nil, false
	}

	end := it.pos + it.batch
	if end > len(it.order) {
		end = len(it.order)
	}
	idx := it.order[it.pos:end]
	it.pos = end

	xm := mat.NewDense(len(idx), len(it.features[0]), nil)
	ym := mat.NewDense(len(idx), len(it.labels[0]), nil)
	for i, row := range idx {
		xm.SetRow(i, it.features[row])
		ym.SetRow(i, it.labels[row])
	}

	return nn.NewConstant(xm), nn.NewConstant(ym), true
}

// newRowIterator shuffles a fresh pass order and returns an iterator over
// it. batch sizes below one fall back to one row at a time.
func newRowIterator(rng *rand.Rand, features, labels [][]float64, batch int) models.BatchIterator {
	if batch < 1 {
		batch = 1
	}

	order := rng.Perm(len(features))
	return &rowIterator{
		features: features,
		labels:   labels,
		order:    order,
		batch:    batch,
	}
}

// oneHot returns a length-n row with a single 1 at index i.
func oneHot(n, i int) []float64 {
	row := make([]float64, n)
	row[i] = 1
	return row
}

// argmaxRow returns the index of the largest value in row i of m.
func argmaxRow(m *mat.Dense, i int) int {
	_, c := m.Dims()
	best := 0
	for j := 1; j < c; j++ {
		if m.At(i, j) > m.At(i, best) {
			best = j
		}
	}
	return best
}
