// Command langid trains the recurrent language identifier on a generated
// word corpus until validation accuracy reaches its threshold, then
// classifies any words given on the command line.
package main

import (
	"log"

	"github.com/alexflint/go-arg"

	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/datasets"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/models"
)

type args struct {
	PerLanguage int      `arg:"help:training words generated per language"`
	Seed        int64    `arg:"help:seed for data and weight initialization"`
	Words       []string `arg:"positional,help:words to classify after training"`
}

func (args) Description() string {
	return "Train the recurrent language identifier to 0.82 validation accuracy. Training has no epoch cap."
}

func main() {
	a := args{PerLanguage: 100, Seed: 1}
	arg.MustParse(&a)

	nn.Seed(a.Seed)
	data := datasets.SyntheticWords(a.PerLanguage, a.Seed)

	m := models.NewLanguageID()
	data.SetModel(m)
	m.Status = func(epoch int, accuracy float64) {
		log.Printf("epoch=%d validation_accuracy=%.3f", epoch, accuracy)
	}

	log.Printf("training on %d words", data.TrainLen())
	m.Train(data)

	for _, word := range a.Words {
		xs, err := data.Encode(word)
		if err != nil {
			log.Printf("%q: %v", word, err)
			continue
		}

		logits := m.Run(xs).Data()
		best := 0
		for j := 1; j < len(models.Languages); j++ {
			if logits.At(0, j) > logits.At(0, best) {
				best = j
			}
		}
		log.Printf("%q: %s", word, models.Languages[best])
	}
}
