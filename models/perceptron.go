package models

import (
	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
)

// PerceptronModel is a binary linear classifier: data points belong to a
// class (+1) or not (-1), decided by the sign of a learned weight vector's
// dot product with the point.
type PerceptronModel struct {
	w *nn.Parameter
}

// NewPerceptron returns a perceptron for data points of the given
// dimensionality.
func NewPerceptron(dimensions int) *PerceptronModel {
	return &PerceptronModel{w: nn.NewParameter(1, dimensions)}
}

// Weights returns the parameter holding the current weight vector.
func (m *PerceptronModel) Weights() *nn.Parameter {
	return m.w
}

// Run returns the score the perceptron assigns to a single data point x,
// which must have shape (1 x dimensions). The result holds one number.
func (m *PerceptronModel) Run(x nn.Node) nn.Node {
	return nn.DotProduct(m.w, x)
}

// GetPrediction returns the predicted class for a single data point: +1 if
// the score is at least zero, otherwise -1.
func (m *PerceptronModel) GetPrediction(x nn.Node) int {
	if nn.AsScalar(m.Run(x)) >= 0.0 {
		return 1
	}
	return -1
}

// Train runs full passes over the dataset one sample at a time, applying the
// perceptron update w += y*x to every misclassified sample, until a complete
// pass produces no misclassifications.
//
// There is no iteration cap: if the dataset is not linearly separable, Train
// never returns.
func (m *PerceptronModel) Train(data Supplier) {
	for {
		converged := true

		it := data.IterateOnce(1)
		for {
			x, y, ok := it.Next()
			if !ok {
				break
			}

			label := nn.AsScalar(y)
			if int(label) != m.GetPrediction(x) {
				converged = false
				m.w.Update(x, label)
			}
		}

		if converged {
			return
		}
	}
}
