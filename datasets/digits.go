package datasets

import (
	"encoding/csv"
	"math/rand"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/pkg/errors"

	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/models"
)

// Digits is a corpus of 784-feature digit images across the ten digit
// classes, split into training and validation sets. A model must be attached
// with SetModel before ValidationAccuracy is queried.
type Digits struct {
	trainX [][]float64
	trainY [][]float64 // one-hot rows
	valX   [][]float64
	valY   []int

	model Scorer
	rng   *rand.Rand
}

// LoadDigitsCSV reads a label-first CSV digit file: each record is a class
// digit followed by 784 pixel values in 0-255, which are scaled to [0, 1].
// valFraction of the records, rounded down, become the validation split.
func LoadDigitsCSV(path string, valFraction float64, seed int64) (*Digits, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening digit file %s", path)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading digit file %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("digit file %s is empty", path)
	}

	features := make([][]float64, len(records))
	labels := make([]int, len(records))
	for i, record := range records {
		if len(record) != models.DigitFeatures+1 {
			return nil, errors.Errorf("record %d has %d fields, expected %d",
				i, len(record), models.DigitFeatures+1)
		}

		label, err := strconv.Atoi(record[0])
		if err != nil || label < 0 || label >= models.DigitClasses {
			return nil, errors.Errorf("record %d has bad label %q", i, record[0])
		}
		labels[i] = label

		row := make([]float64, models.DigitFeatures)
		for j, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "record %d pixel %d", i, j)
			}
			row[j] = v / 255.0
		}
		features[i] = row
	}

	return newDigits(features, labels, valFraction, seed)
}

// SyntheticDigits generates an easily separable digit-like corpus: one
// random prototype image per class, with samples drawn as noisy copies.
// Useful where no CSV corpus is on hand, particularly in tests; the
// validation-accuracy early stop is reachable within a few epochs.
func SyntheticDigits(train, validation int, seed int64) *Digits {
	rng := rand.New(rand.NewSource(seed))

	prototypes := make([][]float64, models.DigitClasses)
	for c := range prototypes {
		proto := make([]float64, models.DigitFeatures)
		for j := range proto {
			proto[j] = rng.Float64()
		}
		prototypes[c] = proto
	}

	sample := func(class int) []float64 {
		const noise = 0.05
		row := make([]float64, models.DigitFeatures)
		for j, v := range prototypes[class] {
			v += rng.NormFloat64() * noise
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			row[j] = v
		}
		return row
	}

	total := train + validation
	features := make([][]float64, total)
	labels := make([]int, total)
	for i := 0; i < total; i++ {
		labels[i] = i % models.DigitClasses
		features[i] = sample(labels[i])
	}

	d, _ := newDigits(features, labels, float64(validation)/float64(total), seed)
	return d
}

func newDigits(features [][]float64, labels []int, valFraction float64, seed int64) (*Digits, error) {
	if valFraction < 0 || valFraction >= 1 {
		return nil, errors.Errorf("validation fraction %v outside [0, 1)", valFraction)
	}

	rng := rand.New(rand.NewSource(seed))

	// Split on a shuffled order so the validation set is not biased by file
	// ordering.
	order := rng.Perm(len(features))
	numVal := int(valFraction * float64(len(features)))

	d := &Digits{rng: rng}
	for i, row := range order {
		if i < numVal {
			d.valX = append(d.valX, features[row])
			d.valY = append(d.valY, labels[row])
		} else {
			d.trainX = append(d.trainX, features[row])
			d.trainY = append(d.trainY, oneHot(models.DigitClasses, labels[row]))
		}
	}

	return d, nil
}

// SetModel attaches the model whose accuracy ValidationAccuracy measures.
func (d *Digits) SetModel(model Scorer) {
	d.model = model
}

// TrainLen returns the number of training images.
func (d *Digits) TrainLen() int {
	return len(d.trainX)
}

// ValidationLen returns the number of held-out images.
func (d *Digits) ValidationLen() int {
	return len(d.valX)
}

// IterateOnce starts a fresh shuffled pass over the training images in
// batches of the given size, with one-hot label rows.
func (d *Digits) IterateOnce(batchSize int) models.BatchIterator {
	return newRowIterator(d.rng, d.trainX, d.trainY, batchSize)
}

// ValidationAccuracy runs the attached model over the whole validation split
// in one batch and returns the fraction of images whose highest logit picks
// the correct class. It panics if no model has been attached.
func (d *Digits) ValidationAccuracy() float64 {
	if d.model == nil {
		panic(errors.New("datasets: Digits has no model attached"))
	}
	if len(d.valX) == 0 {
		return 0
	}

	x := mat.NewDense(len(d.valX), models.DigitFeatures, nil)
	for i, row := range d.valX {
		x.SetRow(i, row)
	}

	logits := d.model.Run(nn.NewConstant(x)).Data()

	var correct int
	for i, want := range d.valY {
		if argmaxRow(logits, i) == want {
			correct++
		}
	}

	return float64(correct) / float64(len(d.valY))
}
