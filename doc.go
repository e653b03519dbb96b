// Package nn provides a small computation-graph engine for training neural
// networks by gradient descent. Values are dense matrices, and every
// operation over them records itself into an implicit graph so that
// Gradients can later walk it backwards.
//
// # Building Graphs
//
// The leaves of a graph are Parameters (trainable) and Constants (data).
// A Parameter is created with its fixed shape:
//
//	w := nn.NewParameter(1, dimensions)
//
// Function nodes are created by composing operations over existing nodes:
//
//	hidden := nn.ReLU(nn.AddBias(nn.Linear(x, w1), b1))
//	logits := nn.AddBias(nn.Linear(hidden, w2), b2)
//	loss := nn.SoftmaxLoss(logits, labels)
//
// Nodes are immutable once created; each forward pass builds a fresh graph.
// Operand shapes are checked at construction, and incompatible operands
// panic with a ShapeError. The panic is deliberate: a shape mismatch is a
// bug in the calling model, not a runtime condition to recover from.
//
// # Training
//
// Gradients computes the derivative of a single-valued loss node with
// respect to a list of Parameters, and Update applies a scaled step in
// place:
//
//	grads := nn.Gradients(loss, []*nn.Parameter{w1, b1, w2, b2})
//	w1.Update(grads[0], learningRate)
//
// A negative multiplier descends the gradient; a positive one ascends it.
//
// The models subpackage contains complete models built on this package, and
// the datasets subpackage supplies data to train them on.
package nn
