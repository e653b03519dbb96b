package models

import (
	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
)

const (
	// AlphabetSize is the number of unique characters across the combined
	// alphabets of the five languages.
	AlphabetSize = 47

	langHidden = 300
	langBatch  = 2
	langRate   = -0.005
	langTarget = 0.82
)

// Languages lists the identifiable languages, in logit order.
var Languages = []string{"English", "Spanish", "Finnish", "Dutch", "Polish"}

// LanguageIDModel identifies the language of a single word. A simple
// recurrent network folds the word's characters into a hidden state of width
// 300, which a final linear projection maps to one score per language.
type LanguageIDModel struct {
	wx *nn.Parameter // character input transform, shared across steps
	wh *nn.Parameter // hidden-to-hidden transform
	wf *nn.Parameter // final projection to language scores

	// Status, if non-nil, is called after every epoch with the epoch number
	// (from 1) and the validation accuracy measured at its end.
	Status func(epoch int, accuracy float64)
}

// NewLanguageID returns a language identifier with freshly initialized
// parameters.
func NewLanguageID() *LanguageIDModel {
	return &LanguageIDModel{
		wx: nn.NewParameter(AlphabetSize, langHidden),
		wh: nn.NewParameter(langHidden, langHidden),
		wf: nn.NewParameter(langHidden, len(Languages)),
	}
}

// Run returns per-language scores for a batch of words. xs holds one node
// per character position; each has shape (batch x 47), every row a one-hot
// character encoding. All words in the batch must have the same length,
// which is the dataset's obligation. The result has shape (batch x 5).
//
// The hidden state starts as a linear transform of the first character; each
// later character contributes through hidden = relu(linear(char) +
// linear(hidden)).
func (m *LanguageIDModel) Run(xs []*nn.Constant) nn.Node {
	h := nn.Linear(xs[0], m.wx)
	for _, x := range xs[1:] {
		h = nn.ReLU(nn.Add(nn.Linear(x, m.wx), nn.Linear(h, m.wh)))
	}
	return nn.Linear(h, m.wf)
}

// GetLoss returns the softmax cross-entropy between the model's scores for
// xs and the one-hot language labels y of shape (batch x 5).
func (m *LanguageIDModel) GetLoss(xs []*nn.Constant, y nn.Node) nn.Node {
	return nn.SoftmaxLoss(m.Run(xs), y)
}

// Train runs gradient descent in batches of 2, checking the dataset's
// validation accuracy after each epoch and stopping once it reaches 0.82.
//
// There is no epoch cap: Train relies entirely on the accuracy threshold
// being reachable, and loops forever if it is not.
func (m *LanguageIDModel) Train(data SequenceDataset) {
	params := []*nn.Parameter{m.wx, m.wh, m.wf}

	for epoch := 1; ; epoch++ {
		it := data.IterateOnce(langBatch)
		for {
			xs, y, ok := it.Next()
			if !ok {
				break
			}

			grads := nn.Gradients(m.GetLoss(xs, y), params)
			for i, p := range params {
				p.Update(grads[i], langRate)
			}
		}

		accuracy := data.ValidationAccuracy()
		if m.Status != nil {
			m.Status(epoch, accuracy)
		}
		if accuracy >= langTarget {
			return
		}
	}
}
