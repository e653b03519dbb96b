package nn

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Node is a single value in a computation graph: either a leaf holding data
// (Parameter, Constant) or the result of an operation over other nodes.
// Nodes are immutable once created, with the sole exception of
// (*Parameter).Update.
type Node interface {
	// Data returns the matrix held by the node. Callers must not modify it.
	Data() *mat.Dense

	// parents returns the operand nodes, in order. Leaves return nil.
	parents() []Node

	// backward takes the derivative of the final loss with respect to this
	// node and returns the derivative with respect to each parent, in the
	// same order as parents(). Leaves return nil.
	backward(grad *mat.Dense) []*mat.Dense
}

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// Seed makes all subsequent parameter initialization deterministic.
func Seed(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

// Parameter is a trainable node. Its shape is fixed at creation; its data is
// mutated in place by Update and by nothing else.
type Parameter struct {
	data *mat.Dense
}

// NewParameter returns a freshly initialized rows x cols Parameter. Entries
// are drawn uniformly from ±sqrt(3 / mean(rows, cols)), which keeps the
// variance of activations roughly constant across layers. NewParameter
// panics with a ShapeError if either dimension is less than one.
func NewParameter(rows, cols int) *Parameter {
	if rows < 1 || cols < 1 {
		panic(ShapeError{"NewParameter", []string{fmt.Sprintf("%dx%d", rows, cols)}})
	}

	limit := math.Sqrt(3.0 / (float64(rows+cols) / 2.0))
	data := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data.Set(i, j, rng.Float64()*2*limit-limit)
		}
	}

	return &Parameter{data: data}
}

// Data returns the parameter's matrix. It is the live storage, not a copy;
// callers other than Update must not modify it.
func (p *Parameter) Data() *mat.Dense {
	return p.data
}

func (p *Parameter) parents() []Node {
	return nil
}

func (p *Parameter) backward(grad *mat.Dense) []*mat.Dense {
	return nil
}

// Update mutates the parameter in place:
//
//	p = p + multiplier * direction
//
// direction must have the parameter's shape. A negative multiplier with a
// gradient direction is a gradient-descent step; a multiplier of zero leaves
// the parameter unchanged. Update panics with a ShapeError on mismatched
// shapes and ErrNilNode if direction is nil.
func (p *Parameter) Update(direction Node, multiplier float64) {
	if direction == nil {
		panic(ErrNilNode)
	}

	d := direction.Data()
	mustMatch("Update", p.data, d)

	var step mat.Dense
	step.Scale(multiplier, d)
	p.data.Add(p.data, &step)
}

// Constant is a non-trainable data node, used for inputs, labels, and the
// gradients returned by Gradients.
type Constant struct {
	data *mat.Dense
}

// NewConstant wraps the given matrix as a graph node. The matrix is not
// copied; the caller must not modify it afterwards. NewConstant panics with
// ErrNilNode if data is nil.
func NewConstant(data *mat.Dense) *Constant {
	if data == nil {
		panic(ErrNilNode)
	}

	return &Constant{data: data}
}

// ConstantVector returns a 1 x len(values) Constant holding a copy of the
// given values.
func ConstantVector(values []float64) *Constant {
	row := make([]float64, len(values))
	copy(row, values)
	return &Constant{data: mat.NewDense(1, len(values), row)}
}

// ConstantScalar returns a 1x1 Constant holding the given value.
func ConstantScalar(v float64) *Constant {
	return &Constant{data: mat.NewDense(1, 1, []float64{v})}
}

// Data returns the matrix held by the constant. Callers must not modify it.
func (c *Constant) Data() *mat.Dense {
	return c.data
}

func (c *Constant) parents() []Node {
	return nil
}

func (c *Constant) backward(grad *mat.Dense) []*mat.Dense {
	return nil
}

// shape gives the "RxC" form of a matrix for ShapeErrors.
func shape(m *mat.Dense) string {
	r, c := m.Dims()
	return fmt.Sprintf("%dx%d", r, c)
}

// mustMatch panics with a ShapeError unless a and b have identical dimensions.
func mustMatch(op string, a, b *mat.Dense) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic(ShapeError{op, []string{shape(a), shape(b)}})
	}
}
