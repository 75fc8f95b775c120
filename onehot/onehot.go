package onehot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Encoder expands columns of integer labels into one-hot indicator blocks.
//
// The encoding layout is fixed at construction: feature j owns a contiguous
// block of len(categories[j]) output columns starting at offset(j), and the
// column within the block follows the declared category order. Fit arms the
// encoder by checking a sample row against the declared feature count; it
// never learns categories from data.
type Encoder struct {
	categories [][]int
	index      []map[int]int // label -> column position within the block
	offsets    []int         // first output column of each feature block
	width      int           // total encoded width
	sparse     bool
	fitted     bool
}

// New builds an Encoder over the given per-feature category labels.
// The category slices are copied; later mutation of the argument is safe.
func New(categories [][]int, opts ...Option) *Encoder {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	cats := make([][]int, len(categories))
	for j, labels := range categories {
		cats[j] = append([]int(nil), labels...)
	}

	return &Encoder{categories: cats, sparse: o.Sparse}
}

// Fit arms the encoder. The matrix content is ignored; only its column
// count is checked against the declared feature count, so a single
// placeholder row is enough.
//
// Errors: ErrNilMatrix, ErrNoCategories, ErrEmptyCategories,
// ErrDuplicateCategory, ErrShapeMismatch.
func (e *Encoder) Fit(x mat.Matrix) error {
	if x == nil {
		return ErrNilMatrix
	}
	if len(e.categories) == 0 {
		return ErrNoCategories
	}
	if _, c := x.Dims(); c != len(e.categories) {
		return fmt.Errorf("%w: got %d columns, declared %d features", ErrShapeMismatch, c, len(e.categories))
	}

	index := make([]map[int]int, len(e.categories))
	offsets := make([]int, len(e.categories))
	width := 0
	for j, labels := range e.categories {
		if len(labels) == 0 {
			return fmt.Errorf("%w: feature %d", ErrEmptyCategories, j)
		}
		index[j] = make(map[int]int, len(labels))
		for pos, label := range labels {
			if _, dup := index[j][label]; dup {
				return fmt.Errorf("%w: feature %d, label %d", ErrDuplicateCategory, j, label)
			}
			index[j][label] = pos
		}
		offsets[j] = width
		width += len(labels)
	}

	e.index = index
	e.offsets = offsets
	e.width = width
	e.fitted = true

	return nil
}

// Width returns the total encoded column count. Zero before Fit.
func (e *Encoder) Width() int {
	if !e.fitted {
		return 0
	}

	return e.width
}

// Transform encodes a matrix of integer labels (stored as floats) into
// indicator blocks. The result is a *CSR when the encoder was built with
// Sparse(), a *mat.Dense otherwise. The input is only read.
//
// Errors: ErrNotFitted, ErrNilMatrix, ErrShapeMismatch, ErrUnknownLabel.
func (e *Encoder) Transform(x mat.Matrix) (mat.Matrix, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, ErrNilMatrix
	}
	r, c := x.Dims()
	if c != len(e.categories) {
		return nil, fmt.Errorf("%w: got %d columns, declared %d features", ErrShapeMismatch, c, len(e.categories))
	}

	if e.sparse {
		return e.transformSparse(x, r, c)
	}

	out := mat.NewDense(r, e.width, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			col, err := e.columnFor(i, j, x.At(i, j))
			if err != nil {
				return nil, err
			}
			out.Set(i, col, 1)
		}
	}

	return out, nil
}

// transformSparse builds the CSR form directly: every row holds exactly one
// non-zero per feature block, and block offsets grow with the feature index,
// so the per-row column indices come out sorted for free.
func (e *Encoder) transformSparse(x mat.Matrix, r, c int) (*CSR, error) {
	indptr := make([]int, r+1)
	indices := make([]int, 0, r*c)
	data := make([]float64, 0, r*c)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			col, err := e.columnFor(i, j, x.At(i, j))
			if err != nil {
				return nil, err
			}
			indices = append(indices, col)
			data = append(data, 1)
		}
		indptr[i+1] = len(indices)
	}

	return &CSR{rows: r, cols: e.width, indptr: indptr, indices: indices, data: data}, nil
}

// columnFor resolves the output column of label v in feature j.
func (e *Encoder) columnFor(row, j int, v float64) (int, error) {
	label := int(v)
	pos, ok := e.index[j][label]
	if !ok || float64(label) != v {
		return 0, fmt.Errorf("%w: row %d, feature %d, value %g", ErrUnknownLabel, row, j, v)
	}

	return e.offsets[j] + pos, nil
}

// InverseTransform recovers the label matrix from encoded data by taking
// the per-block argmax, mapped back through the declared category order.
// It accepts any mat.Matrix, so both dense and CSR outputs round-trip.
//
// Errors: ErrNotFitted, ErrNilMatrix, ErrShapeMismatch.
func (e *Encoder) InverseTransform(x mat.Matrix) (mat.Matrix, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, ErrNilMatrix
	}
	r, c := x.Dims()
	if c != e.width {
		return nil, fmt.Errorf("%w: got %d columns, encoded width is %d", ErrShapeMismatch, c, e.width)
	}

	out := mat.NewDense(r, len(e.categories), nil)
	for i := 0; i < r; i++ {
		for j, labels := range e.categories {
			best := 0
			bestVal := math.Inf(-1)
			for pos := range labels {
				if v := x.At(i, e.offsets[j]+pos); v > bestVal {
					best = pos
					bestVal = v
				}
			}
			out.Set(i, j, float64(labels[best]))
		}
	}

	return out, nil
}
