// Command perceptron trains the linear perceptron on a generated linearly
// separable sample and reports the weights it converged to.
package main

import (
	"log"

	"github.com/alexflint/go-arg"
	"gonum.org/v1/gonum/mat"

	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/datasets"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/models"
)

type args struct {
	Points int   `arg:"help:number of separable points to generate"`
	Dim    int   `arg:"help:dimensionality of the generated points"`
	Seed   int64 `arg:"help:seed for data generation and weight initialization"`
}

func (args) Description() string {
	return "Train a perceptron until a full pass over a linearly separable sample has no misclassifications."
}

func main() {
	a := args{Points: 200, Dim: 2, Seed: 1}
	arg.MustParse(&a)

	nn.Seed(a.Seed)
	data := datasets.SeparablePoints(a.Points, a.Dim, a.Seed)
	m := models.NewPerceptron(a.Dim)

	log.Printf("training on %d points in %d dimensions", data.Len(), a.Dim)
	m.Train(data)

	accuracy := data.Accuracy(func(x []float64) int {
		return m.GetPrediction(nn.ConstantVector(x))
	})
	log.Printf("converged: accuracy=%.3f weights=%v",
		accuracy, mat.Formatted(m.Weights().Data(), mat.Prefix("  ")))
}
