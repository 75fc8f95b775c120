// Package onehot_test validates encoding layout, sparse/dense parity,
// inverse mapping, and the declared-categories contract.
package onehot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/binned/onehot"
)

// fitEncoder builds and arms an encoder over the given categories.
func fitEncoder(t *testing.T, categories [][]int, opts ...onehot.Option) *onehot.Encoder {
	t.Helper()
	enc := onehot.New(categories, opts...)
	require.NoError(t, enc.Fit(mat.NewDense(1, len(categories), nil)))

	return enc
}

func TestEncoder_TransformBeforeFit(t *testing.T) {
	enc := onehot.New([][]int{{0, 1}})
	_, err := enc.Transform(mat.NewDense(1, 1, []float64{0}))
	require.ErrorIs(t, err, onehot.ErrNotFitted)

	_, err = enc.InverseTransform(mat.NewDense(1, 2, []float64{1, 0}))
	require.ErrorIs(t, err, onehot.ErrNotFitted)
}

func TestEncoder_FitValidation(t *testing.T) {
	require.ErrorIs(t, onehot.New(nil).Fit(mat.NewDense(1, 1, nil)), onehot.ErrNoCategories)

	enc := onehot.New([][]int{{0, 1}, {}})
	err := enc.Fit(mat.NewDense(1, 2, nil))
	require.ErrorIs(t, err, onehot.ErrEmptyCategories)

	enc = onehot.New([][]int{{0, 1, 1}})
	err = enc.Fit(mat.NewDense(1, 1, nil))
	require.ErrorIs(t, err, onehot.ErrDuplicateCategory)

	enc = onehot.New([][]int{{0, 1}})
	err = enc.Fit(mat.NewDense(1, 3, nil))
	require.ErrorIs(t, err, onehot.ErrShapeMismatch)
}

func TestEncoder_DenseLayout(t *testing.T) {
	// Feature 0 declares {0,1,2}, feature 1 declares {0,1}: width 5, with
	// feature 1's block starting at column 3.
	enc := fitEncoder(t, [][]int{{0, 1, 2}, {0, 1}})
	require.Equal(t, 5, enc.Width())

	out, err := enc.Transform(mat.NewDense(2, 2, []float64{
		2, 0,
		1, 1,
	}))
	require.NoError(t, err)

	want := mat.NewDense(2, 5, []float64{
		0, 0, 1, 1, 0,
		0, 1, 0, 0, 1,
	})
	assert.True(t, mat.Equal(want, out), "unexpected layout:\n%v", mat.Formatted(out))
}

func TestEncoder_SparseMatchesDense(t *testing.T) {
	categories := [][]int{{0, 1, 2}, {0, 1}}
	labels := mat.NewDense(3, 2, []float64{
		0, 1,
		2, 0,
		1, 1,
	})

	dense, err := fitEncoder(t, categories).Transform(labels)
	require.NoError(t, err)

	sparseOut, err := fitEncoder(t, categories, onehot.Sparse()).Transform(labels)
	require.NoError(t, err)
	csr, ok := sparseOut.(*onehot.CSR)
	require.True(t, ok, "Sparse() encoder must return *CSR")

	assert.Equal(t, 6, csr.NNZ(), "one non-zero per row per feature")
	assert.True(t, mat.Equal(dense, csr))
	assert.True(t, mat.Equal(dense, csr.Dense()))
}

func TestEncoder_UnknownLabel(t *testing.T) {
	enc := fitEncoder(t, [][]int{{0, 1}})

	_, err := enc.Transform(mat.NewDense(1, 1, []float64{5}))
	require.ErrorIs(t, err, onehot.ErrUnknownLabel)

	// Fractional values are not labels even when truncation would match.
	_, err = enc.Transform(mat.NewDense(1, 1, []float64{0.5}))
	require.ErrorIs(t, err, onehot.ErrUnknownLabel)
}

func TestEncoder_InverseRoundTrip(t *testing.T) {
	// Non-contiguous labels exercise the declared-order mapping.
	enc := fitEncoder(t, [][]int{{3, 5, 7}, {10, 20}}, onehot.Sparse())
	labels := mat.NewDense(3, 2, []float64{
		3, 20,
		7, 10,
		5, 10,
	})

	encoded, err := enc.Transform(labels)
	require.NoError(t, err)
	back, err := enc.InverseTransform(encoded)
	require.NoError(t, err)
	assert.True(t, mat.Equal(labels, back), "round trip mismatch:\n%v", mat.Formatted(back))
}

func TestEncoder_InverseShapeMismatch(t *testing.T) {
	enc := fitEncoder(t, [][]int{{0, 1, 2}})
	_, err := enc.InverseTransform(mat.NewDense(1, 2, []float64{1, 0}))
	require.ErrorIs(t, err, onehot.ErrShapeMismatch)
}

func TestCSR_At(t *testing.T) {
	enc := fitEncoder(t, [][]int{{0, 1}}, onehot.Sparse())
	out, err := enc.Transform(mat.NewDense(2, 1, []float64{1, 0}))
	require.NoError(t, err)

	assert.Equal(t, 0.0, out.At(0, 0))
	assert.Equal(t, 1.0, out.At(0, 1))
	assert.Equal(t, 1.0, out.At(1, 0))
	assert.Equal(t, 0.0, out.At(1, 1))

	r, c := out.T().Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
}
