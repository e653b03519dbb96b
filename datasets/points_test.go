package datasets

import (
	"testing"

	nn "github.com/CaoimhConway/NeuralNetworkFlexibility"
)

func TestSeparablePointsAreSigned(t *testing.T) {
	data := SeparablePoints(80, 4, 1)

	if data.Len() != 80 {
		t.Fatalf("expected 80 points, got %d", data.Len())
	}

	it := data.IterateOnce(1)
	for {
		x, y, ok := it.Next()
		if !ok {
			break
		}

		if r, c := x.Data().Dims(); r != 1 || c != 4 {
			t.Fatalf("expected 1x4 point, got %dx%d", r, c)
		}
		if label := nn.AsScalar(y); label != 1 && label != -1 {
			t.Fatalf("expected label +1 or -1, got %v", label)
		}
	}
}

func TestIterateOnceCoversAllPointsEachPass(t *testing.T) {
	data := SeparablePoints(50, 2, 3)

	for pass := 0; pass < 2; pass++ {
		var seen int
		it := data.IterateOnce(1)
		for {
			if _, _, ok := it.Next(); !ok {
				break
			}
			seen++
		}
		if seen != 50 {
			t.Fatalf("pass %d visited %d points, expected 50", pass, seen)
		}
	}
}

func TestNewPointsRejectsBadLabels(t *testing.T) {
	_, err := NewPoints([][]float64{{1, 2}}, []float64{0.5}, 1)
	if err == nil {
		t.Fatalf("expected an error for label 0.5")
	}
}

func TestRowIteratorShortFinalBatch(t *testing.T) {
	data := SeparablePoints(25, 2, 5)

	it := data.IterateOnce(10)
	var rows []int
	for {
		x, _, ok := it.Next()
		if !ok {
			break
		}
		r, _ := x.Data().Dims()
		rows = append(rows, r)
	}

	if len(rows) != 3 || rows[0] != 10 || rows[1] != 10 || rows[2] != 5 {
		t.Fatalf("expected batches of 10, 10, 5; got %v", rows)
	}
}
