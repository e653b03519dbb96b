package models

import (
	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
)

// RegressionEpochs is the fixed number of epochs RegressionModel.Train
// always runs.
const RegressionEpochs = 1000

const (
	regressionHidden = 100
	regressionBatch  = 10
	regressionRate   = -0.02
)

// RegressionModel approximates a function from real numbers to real numbers
// with a two-layer feed-forward network: a rectified hidden layer of width
// 100 and a linear output. It is sized to fit sin(x) on [-2pi, 2pi].
type RegressionModel struct {
	w1, b1 *nn.Parameter
	w2, b2 *nn.Parameter

	// Status, if non-nil, is called after every epoch with the epoch number
	// (from 1) and the loss of the epoch's final batch.
	Status func(epoch int, loss float64)
}

// NewRegression returns a regression model with freshly initialized
// parameters.
func NewRegression() *RegressionModel {
	return &RegressionModel{
		w1: nn.NewParameter(1, regressionHidden),
		b1: nn.NewParameter(1, regressionHidden),
		w2: nn.NewParameter(regressionHidden, 1),
		b2: nn.NewParameter(1, 1),
	}
}

// Run predicts y-values for a batch of inputs x of shape (batch x 1),
// returning a node of the same shape.
func (m *RegressionModel) Run(x nn.Node) nn.Node {
	hidden := nn.ReLU(nn.AddBias(nn.Linear(x, m.w1), m.b1))
	return nn.AddBias(nn.Linear(hidden, m.w2), m.b2)
}

// GetLoss returns the mean squared error between the model's predictions for
// x and the true values y, both of shape (batch x 1).
func (m *RegressionModel) GetLoss(x, y nn.Node) nn.Node {
	return nn.SquareLoss(m.Run(x), y)
}

// Train fits the model with exactly 1000 epochs of gradient descent in
// batches of 10 at a fixed learning rate. There is no early stopping and no
// loss threshold: the full epoch count always runs.
func (m *RegressionModel) Train(data Supplier) {
	params := []*nn.Parameter{m.w1, m.w2, m.b1, m.b2}

	for epoch := 1; epoch <= RegressionEpochs; epoch++ {
		var last float64

		it := data.IterateOnce(regressionBatch)
		for {
			x, y, ok := it.Next()
			if !ok {
				break
			}

			loss := m.GetLoss(x, y)
			grads := nn.Gradients(loss, params)
			for i, p := range params {
				p.Update(grads[i], regressionRate)
			}
			last = nn.AsScalar(loss)
		}

		if m.Status != nil {
			m.Status(epoch, last)
		}
	}
}
