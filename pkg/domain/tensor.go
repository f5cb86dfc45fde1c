package domain

import "fmt"

// MaxTableCells bounds the number of cells a single table may hold.
// Every table is dense, so the bound applies to the largest one, R.
const MaxTableCells = 1 << 25

// TableCells returns the product of dims, or ErrDimension when it overflows
// or exceeds MaxTableCells.
func TableCells(dims ...int) (int, error) {
	size := 1
	for _, d := range dims {
		if d < 0 || (d > 0 && size > MaxTableCells/d) {
			return 0, fmt.Errorf("%w: table of shape %v exceeds %d cells", ErrDimension, dims, MaxTableCells)
		}
		size *= d
	}
	return size, nil
}

// Tensor is a dense row-major table over a fixed shape.
// It tracks which cells were assigned so that reads of cells the source never
// defined can be told apart from explicit zeros.
type Tensor struct {
	shape   []int
	strides []int
	data    []float64
	set     []bool
}

// NewTensor allocates a zeroed, fully unassigned tensor.
func NewTensor(shape ...int) *Tensor {
	size := 1
	strides := make([]int, len(shape))
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = size
		size *= shape[i]
	}
	dims := make([]int, len(shape))
	copy(dims, shape)
	return &Tensor{
		shape:   dims,
		strides: strides,
		data:    make([]float64, size),
		set:     make([]bool, size),
	}
}

// Shape returns a copy of the tensor dimensions.
func (t *Tensor) Shape() []int {
	out := make([]int, len(t.shape))
	copy(out, t.shape)
	return out
}

func (t *Tensor) offset(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("%w: got %d indices for rank %d", ErrDimension, len(idx), len(t.shape))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= t.shape[i] {
			return 0, fmt.Errorf("%w: index %d out of range [0,%d) on axis %d", ErrLookup, v, t.shape[i], i)
		}
		off += v * t.strides[i]
	}
	return off, nil
}

// Set assigns a value to a cell. A later assignment overwrites an earlier one.
func (t *Tensor) Set(v float64, idx ...int) error {
	off, err := t.offset(idx)
	if err != nil {
		return err
	}
	t.data[off] = v
	t.set[off] = true
	return nil
}

// At returns the cell value and whether it was ever assigned.
func (t *Tensor) At(idx ...int) (float64, bool) {
	off, err := t.offset(idx)
	if err != nil {
		return 0, false
	}
	return t.data[off], t.set[off]
}

// Get returns the cell value, or an ErrLookup error if it was never assigned.
func (t *Tensor) Get(idx ...int) (float64, error) {
	off, err := t.offset(idx)
	if err != nil {
		return 0, err
	}
	if !t.set[off] {
		return 0, fmt.Errorf("%w: cell %v undefined", ErrLookup, idx)
	}
	return t.data[off], nil
}

// Assigned returns the number of cells that were set.
func (t *Tensor) Assigned() int {
	n := 0
	for _, ok := range t.set {
		if ok {
			n++
		}
	}
	return n
}

// Size returns the total number of cells.
func (t *Tensor) Size() int { return len(t.data) }
