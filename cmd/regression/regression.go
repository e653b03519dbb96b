// Command regression fits the two-layer regression model to sin(x) on
// [-2pi, 2pi] and reports the error on a held-out sample.
package main

import (
	"log"

	"github.com/alexflint/go-arg"
	"gopkg.in/cheggaaa/pb.v1"

	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/datasets"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/models"
)

type args struct {
	Train   int   `arg:"help:number of evenly spaced training points"`
	Holdout int   `arg:"help:number of held-out points"`
	Seed    int64 `arg:"help:seed for data and weight initialization"`
}

func (args) Description() string {
	return "Fit sin(x) with a rectified two-layer network over a fixed 1000-epoch budget."
}

func main() {
	a := args{Train: 200, Holdout: 100, Seed: 1}
	arg.MustParse(&a)

	nn.Seed(a.Seed)
	data := datasets.NewSine(a.Train, a.Holdout, a.Seed)
	m := models.NewRegression()

	bar := pb.New(models.RegressionEpochs)
	bar.Start()
	m.Status = func(epoch int, loss float64) {
		bar.Increment()
	}

	m.Train(data)
	bar.Finish()

	log.Printf("trained %d epochs: held-out mse=%.5f", models.RegressionEpochs, data.ValidationMSE(m))
}
