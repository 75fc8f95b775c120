package onehot

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CSR is a read-only compressed-sparse-row matrix holding one-hot output.
// It implements mat.Matrix, so it can flow anywhere a dense result could;
// call Dense when a concrete *mat.Dense is required.
//
// Invariant: column indices within each row are strictly increasing.
type CSR struct {
	rows, cols int
	indptr     []int // row i occupies indices[indptr[i]:indptr[i+1]]
	indices    []int
	data       []float64
}

// Dims returns the matrix dimensions.
func (m *CSR) Dims() (r, c int) { return m.rows, m.cols }

// At returns the value at (i, j). Out-of-range access panics, matching the
// behavior of the gonum mat types.
func (m *CSR) At(i, j int) float64 {
	if i < 0 || i >= m.rows {
		panic("onehot: CSR row index out of range")
	}
	if j < 0 || j >= m.cols {
		panic("onehot: CSR column index out of range")
	}

	lo, hi := m.indptr[i], m.indptr[i+1]
	row := m.indices[lo:hi]
	p := sort.SearchInts(row, j)
	if p < len(row) && row[p] == j {
		return m.data[lo+p]
	}

	return 0
}

// T returns the transpose via the standard gonum wrapper.
func (m *CSR) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// NNZ returns the number of stored non-zero entries.
func (m *CSR) NNZ() int { return len(m.data) }

// Dense expands the matrix into a freshly allocated *mat.Dense.
func (m *CSR) Dense() *mat.Dense {
	out := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			out.Set(i, m.indices[p], m.data[p])
		}
	}

	return out
}
