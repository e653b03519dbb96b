package datasets

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/pkg/errors"

	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
	"github.com/CaoimhConway/NeuralNetworkFlexibility/models"
)

// Alphabet is the combined 47-character alphabet of the five languages.
// A character's position here is its one-hot index.
const Alphabet = "abcdefghijklmnopqrstuvwxyzàáâäèéêëìíîïñòóôöùúûü"

var alphabetIndex = func() map[rune]int {
	m := make(map[rune]int, models.AlphabetSize)
	for i, r := range []rune(Alphabet) {
		m[r] = i
	}
	return m
}()

type word struct {
	chars []int // alphabet indexes
	lang  int   // index into models.Languages
}

// Words is a corpus of single words across the five languages, split into
// training and validation sets. Batches group words of equal length, so all
// time steps within a batch line up; this is the guarantee the language
// model's recurrence relies on. A model must be attached with SetModel
// before ValidationAccuracy is queried.
type Words struct {
	train []word
	val   []word

	model SequenceScorer
	rng   *rand.Rand
}

// NewWords builds a corpus from per-language word lists, indexed in the
// order of models.Languages. valFraction of each language's words, rounded
// down, become the validation split. Words containing characters outside
// Alphabet are rejected.
func NewWords(byLanguage [][]string, valFraction float64, seed int64) (*Words, error) {
	if len(byLanguage) != len(models.Languages) {
		return nil, errors.Errorf("datasets: %d word lists for %d languages",
			len(byLanguage), len(models.Languages))
	}
	if valFraction < 0 || valFraction >= 1 {
		return nil, errors.Errorf("datasets: validation fraction %v outside [0, 1)", valFraction)
	}

	w := &Words{rng: rand.New(rand.NewSource(seed))}
	for lang, list := range byLanguage {
		numVal := int(valFraction * float64(len(list)))
		for i, s := range list {
			enc, err := encodeWord(s)
			if err != nil {
				return nil, errors.Wrapf(err, "%s word %q", models.Languages[lang], s)
			}

			wd := word{chars: enc, lang: lang}
			if i < numVal {
				w.val = append(w.val, wd)
			} else {
				w.train = append(w.train, wd)
			}
		}
	}

	if len(w.train) == 0 {
		return nil, errors.New("datasets: no training words")
	}
	return w, nil
}

// SyntheticWords generates a language-separable corpus: each language draws
// its characters from its own disjoint slice of the alphabet, so the
// language model's accuracy threshold is reachable within a few epochs.
// perLanguage training words and a quarter as many validation words are
// generated for each language.
func SyntheticWords(perLanguage int, seed int64) *Words {
	rng := rand.New(rand.NewSource(seed))

	makeWord := func(lang int) word {
		length := 3 + rng.Intn(5)
		chars := make([]int, length)
		for i := range chars {
			chars[i] = lang*9 + rng.Intn(9)
		}
		return word{chars: chars, lang: lang}
	}

	w := &Words{rng: rng}
	for lang := range models.Languages {
		for i := 0; i < perLanguage; i++ {
			w.train = append(w.train, makeWord(lang))
		}
		for i := 0; i < perLanguage/4; i++ {
			w.val = append(w.val, makeWord(lang))
		}
	}

	return w
}

func encodeWord(s string) ([]int, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil, errors.New("empty word")
	}

	chars := make([]int, len(runes))
	for i, r := range runes {
		idx, ok := alphabetIndex[r]
		if !ok {
			return nil, errors.Errorf("character %q is not in the alphabet", r)
		}
		chars[i] = idx
	}
	return chars, nil
}

// Encode converts a word into the per-character one-hot nodes the language
// model consumes: one (1 x 47) node per character.
func (w *Words) Encode(s string) ([]*nn.Constant, error) {
	chars, err := encodeWord(s)
	if err != nil {
		return nil, err
	}
	return stepMatrices([]word{{chars: chars}}), nil
}

// SetModel attaches the model whose accuracy ValidationAccuracy measures.
func (w *Words) SetModel(model SequenceScorer) {
	w.model = model
}

// TrainLen returns the number of training words.
func (w *Words) TrainLen() int {
	return len(w.train)
}

// IterateOnce starts a fresh pass over the training words. Words are
// bucketed by length, buckets are visited in shuffled order, and each bucket
// is emitted in shuffled batches of at most batchSize words. A batch shorter
// than batchSize appears at most once per bucket, at its end.
func (w *Words) IterateOnce(batchSize int) models.SequenceIterator {
	if batchSize < 1 {
		batchSize = 1
	}

	buckets := bucketByLength(w.train)
	w.rng.Shuffle(len(buckets), func(i, j int) {
		buckets[i], buckets[j] = buckets[j], buckets[i]
	})

	var batches [][]word
	for _, bucket := range buckets {
		w.rng.Shuffle(len(bucket), func(i, j int) {
			bucket[i], bucket[j] = bucket[j], bucket[i]
		})
		for start := 0; start < len(bucket); start += batchSize {
			end := start + batchSize
			if end > len(bucket) {
				end = len(bucket)
			}
			batches = append(batches, bucket[start:end])
		}
	}

	return &wordIterator{batches: batches}
}

type wordIterator struct {
	batches [][]word
	pos     int
}

func (it *wordIterator) Next() (xs []*nn.Constant, y *nn.Constant, ok bool) {
	if it.pos >= len(it.batches) {
		return nil, nil, false
	}

	batch := it.batches[it.pos]
	it.pos++

	labels := mat.NewDense(len(batch), len(models.Languages), nil)
	for i, wd := range batch {
		labels.Set(i, wd.lang, 1)
	}

	return stepMatrices(batch), nn.NewConstant(labels), true
}

// stepMatrices builds the one-hot (batch x 47) node for every character
// position of a batch of equal-length words.
func stepMatrices(batch []word) []*nn.Constant {
	length := len(batch[0].chars)
	xs := make([]*nn.Constant, length)
	for t := 0; t < length; t++ {
		step := mat.NewDense(len(batch), models.AlphabetSize, nil)
		for i, wd := range batch {
			step.Set(i, wd.chars[t], 1)
		}
		xs[t] = nn.NewConstant(step)
	}
	return xs
}

// bucketByLength groups words into slices of equal character count, in
// ascending length order.
func bucketByLength(words []word) [][]word {
	byLen := make(map[int][]word)
	for _, wd := range words {
		byLen[len(wd.chars)] = append(byLen[len(wd.chars)], wd)
	}

	lengths := make([]int, 0, len(byLen))
	for l := range byLen {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	buckets := make([][]word, len(lengths))
	for i, l := range lengths {
		buckets[i] = byLen[l]
	}
	return buckets
}

// ValidationAccuracy runs the attached model over the validation words, one
// equal-length bucket per batch, and returns the fraction whose highest
// score picks the correct language. It panics if no model has been attached.
func (w *Words) ValidationAccuracy() float64 {
	if w.model == nil {
		panic(errors.New("datasets: Words has no model attached"))
	}
	if len(w.val) == 0 {
		return 0
	}

	var correct int
	for _, bucket := range bucketByLength(w.val) {
		logits := w.model.Run(stepMatrices(bucket)).Data()
		for i, wd := range bucket {
			if argmaxRow(logits, i) == wd.lang {
				correct++
			}
		}
	}

	return float64(correct) / float64(len(w.val))
}
