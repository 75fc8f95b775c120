// Package discretize_test validates configuration and bin-count rejection,
// which must all fire before any edge computation.
package discretize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/binned/discretize"
)

// train44 is the reference training matrix used across the test files.
func train44() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		-2, 1, -4, -1,
		-1, 2, -3, -0.5,
		0, 3, -2, 0.5,
		1, 4, -1, 2,
	})
}

// emptyMatrix reports zero dimensions; gonum's own types refuse to be built
// that way, but the Matrix interface allows it.
type emptyMatrix struct{ mat.Matrix }

func (emptyMatrix) Dims() (r, c int) { return 0, 0 }

func TestFit_NilAndEmptyInput(t *testing.T) {
	d := discretize.New()
	require.ErrorIs(t, d.Fit(nil), discretize.ErrNilMatrix)
	require.ErrorIs(t, d.Fit(emptyMatrix{}), discretize.ErrEmptyInput)
}

func TestFit_ScalarBinCountTooSmall(t *testing.T) {
	d := discretize.New(discretize.WithBins(discretize.Count(1)))
	err := d.Fit(train44())
	require.ErrorIs(t, err, discretize.ErrBadBinCount)
	assert.False(t, d.IsFitted())
}

func TestFit_PerFeatureLengthMismatch(t *testing.T) {
	d := discretize.New(discretize.WithBins(discretize.PerFeature([]int{3, 3})))
	err := d.Fit(train44())
	require.ErrorIs(t, err, discretize.ErrBinCountShape)
}

func TestFit_PerFeatureBadEntriesNameIndices(t *testing.T) {
	d := discretize.New(discretize.WithBins(discretize.PerFeature([]int{3, 1, 3, 0})))
	err := d.Fit(train44())
	require.ErrorIs(t, err, discretize.ErrBadBinCount)
	assert.Contains(t, err.Error(), "[1 3]", "error must name the offending feature indices")
}

func TestFit_UnknownEnums(t *testing.T) {
	err := discretize.New(discretize.WithStrategy(discretize.Strategy(99))).Fit(train44())
	require.ErrorIs(t, err, discretize.ErrUnknownStrategy)

	err = discretize.New(discretize.WithEncoding(discretize.Encoding(99))).Fit(train44())
	require.ErrorIs(t, err, discretize.ErrUnknownEncoding)

	err = discretize.New(discretize.WithPrecision(discretize.Precision(99))).Fit(train44())
	require.ErrorIs(t, err, discretize.ErrUnknownPrecision)
}

func TestFit_AutoUsesSturgesRule(t *testing.T) {
	// ceil(log2(4)+1) = 3 bins for every feature.
	d := discretize.New(
		discretize.WithBins(discretize.Auto()),
		discretize.WithStrategy(discretize.Uniform),
		discretize.WithEncoding(discretize.Ordinal),
	)
	require.NoError(t, d.Fit(train44()))
	assert.Equal(t, []int{3, 3, 3, 3}, d.NBins())
}

func TestFit_AutoRejectsTinySamples(t *testing.T) {
	// One sample gives ceil(log2(1)+1) = 1, which is below the minimum.
	d := discretize.New(discretize.WithBins(discretize.Auto()))
	err := d.Fit(mat.NewDense(1, 2, []float64{1, 2}))
	require.ErrorIs(t, err, discretize.ErrBadBinCount)
}

func TestFit_PerFeatureCounts(t *testing.T) {
	d := discretize.New(
		discretize.WithBins(discretize.PerFeature([]int{2, 3, 4, 2})),
		discretize.WithStrategy(discretize.Uniform),
		discretize.WithEncoding(discretize.Ordinal),
	)
	require.NoError(t, d.Fit(train44()))
	assert.Equal(t, []int{2, 3, 4, 2}, d.NBins())

	edges := d.BinEdges()
	for j, e := range edges {
		assert.Len(t, e, d.NBins()[j]+1, "feature %d", j)
	}
}

func TestAccessors_BeforeFit(t *testing.T) {
	d := discretize.New()
	assert.False(t, d.IsFitted())
	assert.Zero(t, d.NFeatures())
	assert.Nil(t, d.NBins())
	assert.Nil(t, d.BinEdges())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { discretize.WithClusterer(nil)(&discretize.Options{}) })
	assert.Panics(t, func() { discretize.WithEncoderFactory(nil)(&discretize.Options{}) })
}
