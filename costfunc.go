package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SquareLoss returns a single-valued node holding the mean of (a-b)^2 / 2
// over all entries. a and b must have identical shapes.
func SquareLoss(a, b Node) Node {
	ad, bd := a.Data(), b.Data()
	mustMatch("SquareLoss", ad, bd)
	r, c := ad.Dims()
	n := float64(r * c)

	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			diff := ad.At(i, j) - bd.At(i, j)
			sum += diff * diff / 2
		}
	}

	return &funcNode{
		data: mat.NewDense(1, 1, []float64{sum / n}),
		ins:  []Node{a, b},
		back: func(grad *mat.Dense) []*mat.Dense {
			g := grad.At(0, 0)
			da := mat.NewDense(r, c, nil)
			db := mat.NewDense(r, c, nil)
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					diff := ad.At(i, j) - bd.At(i, j)
					da.Set(i, j, g*diff/n)
					db.Set(i, j, -g*diff/n)
				}
			}
			return []*mat.Dense{da, db}
		},
	}
}

// SoftmaxLoss returns a single-valued node holding the batch-mean softmax
// cross-entropy between logits and labels, both (batch x classes). Each row
// of labels must be a one-hot encoding of the correct class. The softmax is
// computed against the row maximum so that large logits do not overflow.
func SoftmaxLoss(logits, labels Node) Node {
	ld, yd := logits.Data(), labels.Data()
	mustMatch("SoftmaxLoss", ld, yd)
	r, c := ld.Dims()
	batch := float64(r)

	// log-softmax per row
	logProbs := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		max := ld.At(i, 0)
		for j := 1; j < c; j++ {
			if v := ld.At(i, j); v > max {
				max = v
			}
		}

		var sum float64
		for j := 0; j < c; j++ {
			sum += math.Exp(ld.At(i, j) - max)
		}
		logSum := math.Log(sum)

		for j := 0; j < c; j++ {
			logProbs.Set(i, j, ld.At(i, j)-max-logSum)
		}
	}

	var loss float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			loss -= yd.At(i, j) * logProbs.At(i, j)
		}
	}

	return &funcNode{
		data: mat.NewDense(1, 1, []float64{loss / batch}),
		ins:  []Node{logits, labels},
		back: func(grad *mat.Dense) []*mat.Dense {
			g := grad.At(0, 0)
			dLogits := mat.NewDense(r, c, nil)
			dLabels := mat.NewDense(r, c, nil)
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					softmax := math.Exp(logProbs.At(i, j))
					dLogits.Set(i, j, g*(softmax-yd.At(i, j))/batch)
					dLabels.Set(i, j, -g*logProbs.At(i, j)/batch)
				}
			}
			return []*mat.Dense{dLogits, dLabels}
		},
	}
}
