// Command digits trains the digit classifier, on a label-first CSV corpus
// when one is given and on generated data otherwise, stopping once the
// validation accuracy target is reached.
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
	CSV        string `arg:"help:path to a label-first digit CSV; generated data is used if empty"`
	Train      int    `arg:"help:generated training images (ignored with --csv)"`
	Validation int    `arg:"help:generated validation images (ignored with --csv)"`
	Seed       int64  `arg:"help:seed for data and weight initialization"`
}

func (args) Description() string {
	return "Train the two-layer digit classifier until validation accuracy reaches 0.97, up to 2000 epochs."
}

func main() {
	a := args{Train: 1000, Validation: 200, Seed: 1}
	arg.MustParse(&a)

	nn.Seed(a.Seed)

	var data *datasets.Digits
	if a.CSV != "" {
		var err error
		data, err = datasets.LoadDigitsCSV(a.CSV, 0.2, a.Seed)
		if err != nil {
			log.Fatalf("loading digits: %v", err)
		}
	} else {
		data = datasets.SyntheticDigits(a.Train, a.Validation, a.Seed)
	}

	m := models.NewDigitClassification()
	data.SetModel(m)

	log.Printf("training on %d images, validating on %d", data.TrainLen(), data.ValidationLen())

	bar := pb.New(models.DigitsMaxEpochs)
	bar.Start()

	var epochs int
	var accuracy float64
	m.Status = func(epoch int, acc float64) {
		bar.Increment()
		epochs, accuracy = epoch, acc
	}

	m.Train(data)
	bar.Finish()

	log.Printf("stopped after %d epochs at validation accuracy %.4f", epochs, accuracy)
}
