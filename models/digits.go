package models

import (
	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
)

const (
	// DigitFeatures is the flattened size of a 28x28 grayscale digit image,
	// each entry scaled to [0, 1].
	DigitFeatures = 784

	// DigitClasses is the number of digit classes (0 through 9).
	DigitClasses = 10

	// DigitsMaxEpochs bounds DigitClassificationModel.Train; training stops
	// earlier once the validation target is reached.
	DigitsMaxEpochs = 2000

	digitsHidden = 100
	digitsBatch  = 10
	digitsRate   = -0.02
	digitsTarget = 0.97
)

// DigitClassificationModel sorts handwritten digit images into the ten digit
// classes. It shares the regression model's two-layer architecture with an
// output width of 10, trained under a softmax cross-entropy loss.
type DigitClassificationModel struct {
	w1, b1 *nn.Parameter
	w2, b2 *nn.Parameter

	// Status, if non-nil, is called after every epoch with the epoch number
	// (from 1) and the validation accuracy measured at its end.
	Status func(epoch int, accuracy float64)
}

// NewDigitClassification returns a digit classifier with freshly initialized
// parameters.
func NewDigitClassification() *DigitClassificationModel {
	return &DigitClassificationModel{
		w1: nn.NewParameter(DigitFeatures, digitsHidden),
		b1: nn.NewParameter(1, digitsHidden),
		w2: nn.NewParameter(digitsHidden, DigitClasses),
		b2: nn.NewParameter(1, DigitClasses),
	}
}

// Run returns the per-class scores (logits) for a batch of images x of shape
// (batch x 784). The result has shape (batch x 10).
func (m *DigitClassificationModel) Run(x nn.Node) nn.Node {
	first := nn.Linear(x, m.w1)
	rectified := nn.ReLU(nn.AddBias(first, m.b1))
	second := nn.Linear(rectified, m.w2)
	return nn.AddBias(second, m.b2)
}

// GetLoss returns the softmax cross-entropy between the model's logits for x
// and the one-hot labels y of shape (batch x 10).
func (m *DigitClassificationModel) GetLoss(x, y nn.Node) nn.Node {
	return nn.SoftmaxLoss(m.Run(x), y)
}

// Train runs gradient descent in batches of 10 for up to 2000 epochs,
// querying the dataset's validation accuracy after each epoch and stopping
// early once it reaches 0.97.
func (m *DigitClassificationModel) Train(data Dataset) {
	params := []*nn.Parameter{m.w1, m.w2, m.b1, m.b2}

	for epoch := 1; epoch <= DigitsMaxEpochs; epoch++ {
		it := data.IterateOnce(digitsBatch)
		for {
			x, y, ok := it.Next()
			if !ok {
				break
			}

			grads := nn.Gradients(m.GetLoss(x, y), params)
			for i, p := range params {
				p.Update(grads[i], digitsRate)
			}
		}

		accuracy := data.ValidationAccuracy()
		if m.Status != nil {
			m.Status(epoch, accuracy)
		}
		if accuracy >= digitsTarget {
			return
		}
	}
}
