// Package models implements four supervised models trained over the root
// computation-graph package: a linear perceptron, a sine regressor, a digit
// classifier, and a recurrent language identifier. Each model owns its
// parameters, trains in place on a supplied dataset, and is then used for
// inference; none of them serialize or share state.
package models

import (
	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
)

// BatchIterator produces the batches of one pass over a dataset. Next
// returns ok=false once the pass is complete.
type BatchIterator interface {
	Next() (x, y *nn.Constant, ok bool)
}

// Supplier is the primary method of providing examples to a model. Each call
// to IterateOnce starts a fresh, finite pass covering the dataset once,
// lazily, in batches of the requested size.
type Supplier interface {
	IterateOnce(batchSize int) BatchIterator
}

// Dataset extends Supplier with the held-out accuracy query used by models
// that stop training at a validation threshold.
type Dataset interface {
	Supplier

	// ValidationAccuracy returns the fraction, in [0, 1], of held-out
	// examples the current parameters classify correctly.
	ValidationAccuracy() float64
}

// SequenceIterator produces batches of variable-length sequences. All
// sequences within one batch share the same length: xs holds one (batch x
// alphabet) node per time step.
type SequenceIterator interface {
	Next() (xs []*nn.Constant, y *nn.Constant, ok bool)
}

// SequenceDataset is the sequence counterpart of Dataset. Equal sequence
// length within a batch is the dataset's obligation; models do not enforce
// it.
type SequenceDataset interface {
	IterateOnce(batchSize int) SequenceIterator
	ValidationAccuracy() float64
}
