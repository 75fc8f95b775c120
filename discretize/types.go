package discretize

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/binned/kmeans"
	"github.com/katalvlaran/binned/onehot"
)

// Sentinel errors returned by the Discretizer.
var (
	// ErrNotFitted indicates a transform-family call before a successful Fit.
	ErrNotFitted = errors.New("discretize: model is not fitted; call Fit first")

	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("discretize: input matrix is nil")

	// ErrEmptyInput indicates a fit matrix with no rows or no columns.
	ErrEmptyInput = errors.New("discretize: input must have at least one row and one column")

	// ErrBadBinCount indicates a requested bin count below 2.
	ErrBadBinCount = errors.New("discretize: bin counts must be at least 2")

	// ErrBinCountShape indicates a per-feature bin-count slice whose length
	// does not match the feature count.
	ErrBinCountShape = errors.New("discretize: per-feature bin counts must match the feature count")

	// ErrUnknownStrategy indicates a Strategy outside the supported set.
	ErrUnknownStrategy = errors.New("discretize: unknown strategy")

	// ErrUnknownEncoding indicates an Encoding outside the supported set.
	ErrUnknownEncoding = errors.New("discretize: unknown encoding")

	// ErrUnknownPrecision indicates a Precision outside the supported set.
	ErrUnknownPrecision = errors.New("discretize: unknown output precision")

	// ErrShapeMismatch indicates a transform-time feature count different
	// from the fitted feature count.
	ErrShapeMismatch = errors.New("discretize: feature count differs from the fitted feature count")

	// ErrBadBinIndex indicates an inverse-transform bin index outside the
	// fitted range of its feature.
	ErrBadBinIndex = errors.New("discretize: bin index out of the fitted range")
)

// Strategy selects how bin edges are placed along each feature.
type Strategy int

const (
	// Quantile places edges at evenly spaced empirical percentiles, so each
	// bin holds roughly the same number of training points. Default.
	Quantile Strategy = iota

	// Uniform spaces edges evenly between the feature minimum and maximum.
	Uniform

	// KMeans clusters each column with 1-D k-means and puts edges midway
	// between consecutive sorted cluster centers.
	KMeans
)

// Encoding selects the Transform output representation.
type Encoding int

const (
	// OneHotSparse expands each bin index into an indicator block and
	// returns a sparse matrix. Default.
	OneHotSparse Encoding = iota

	// OneHotDense expands each bin index into an indicator block and
	// returns a dense matrix.
	OneHotDense

	// Ordinal returns the raw integer bin index per feature.
	Ordinal
)

// Precision selects the numeric width of output values.
type Precision int

const (
	// PrecisionNative keeps outputs at the natural float64 width. Default.
	PrecisionNative Precision = iota

	// Precision32 rounds every output value through float32.
	Precision32

	// Precision64 is an explicit request for float64 output.
	Precision64
)

// BinSpec describes how many bins to build per feature: one count for all
// features, an explicit per-feature slice, or automatic selection from the
// sample count. Construct it with Count, PerFeature, or Auto.
type BinSpec struct {
	perFeature []int
	count      int
	auto       bool
}

// Count requests k bins for every feature.
func Count(k int) BinSpec { return BinSpec{count: k} }

// PerFeature requests an explicit bin count per feature. The slice is
// copied; its length must match the fitted feature count.
func PerFeature(counts []int) BinSpec {
	return BinSpec{perFeature: append([]int(nil), counts...)}
}

// Auto selects the bin count from the training sample count by Sturges'
// rule, ceil(log2(n)+1), applied to every feature.
func Auto() BinSpec { return BinSpec{auto: true} }

// Diagnostic is a non-fatal notice emitted during Fit when a feature
// degenerates: a constant column, or bins collapsed by the edge tolerance.
// The model keeps fitting with the adjusted bin count.
type Diagnostic struct {
	Feature int    // index of the affected feature
	Message string // human-readable description
}

// Clusterer is the 1-D clustering capability required by the KMeans
// strategy: cluster a single column seeded at the given initial centers and
// return one center per seed, in any order.
type Clusterer interface {
	Centers(column, init []float64) ([]float64, error)
}

// ClusterFunc adapts a plain clustering function to the Clusterer interface.
type ClusterFunc func(column, init []float64) ([]float64, error)

// Centers calls f.
func (f ClusterFunc) Centers(column, init []float64) ([]float64, error) {
	return f(column, init)
}

// CategoricalEncoder is the encoding capability consumed by the one-hot
// modes: fit once on a placeholder row, expand integer labels to indicator
// columns, and invert that expansion.
type CategoricalEncoder interface {
	Fit(x mat.Matrix) error
	Transform(x mat.Matrix) (mat.Matrix, error)
	InverseTransform(x mat.Matrix) (mat.Matrix, error)
}

// EncoderFactory builds a CategoricalEncoder for the fitted per-feature
// category label sets. sparse requests a sparse-matrix Transform output.
type EncoderFactory func(categories [][]int, sparse bool) CategoricalEncoder

// Options configures a Discretizer.
//
// Bins        – bin-count specification (default Count(5)).
// Strategy    – edge placement strategy (default Quantile).
// Encode      – output representation (default OneHotSparse).
// Precision   – output numeric width (default PrecisionNative).
// Diagnostics – optional sink for degenerate-feature notices.
// Clusterer   – 1-D clusterer for the KMeans strategy.
// NewEncoder  – factory for the one-hot encoder.
type Options struct {
	Bins        BinSpec
	Strategy    Strategy
	Encode      Encoding
	Precision   Precision
	Diagnostics func(Diagnostic)
	Clusterer   Clusterer
	NewEncoder  EncoderFactory
}

// Option is a functional option for configuring a Discretizer.
type Option func(*Options)

// DefaultOptions returns the stable defaults: 5 bins per feature, quantile
// strategy, sparse one-hot output, native precision, and the sibling
// kmeans/onehot packages as collaborators.
func DefaultOptions() Options {
	return Options{
		Bins:      Count(5),
		Strategy:  Quantile,
		Encode:    OneHotSparse,
		Precision: PrecisionNative,
		Clusterer: ClusterFunc(kmeans.Cluster1D),
		NewEncoder: func(categories [][]int, sparse bool) CategoricalEncoder {
			if sparse {
				return onehot.New(categories, onehot.Sparse())
			}

			return onehot.New(categories)
		},
	}
}

// WithBins sets the bin-count specification.
func WithBins(spec BinSpec) Option {
	return func(o *Options) {
		o.Bins = spec
	}
}

// WithStrategy sets the edge placement strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithEncoding sets the Transform output representation.
func WithEncoding(e Encoding) Option {
	return func(o *Options) {
		o.Encode = e
	}
}

// WithPrecision sets the output numeric width.
func WithPrecision(p Precision) Option {
	return func(o *Options) {
		o.Precision = p
	}
}

// WithDiagnostics installs a sink for non-fatal fit-time notices.
// A nil fn silently discards them (the default).
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(o *Options) {
		o.Diagnostics = fn
	}
}

// WithClusterer substitutes the 1-D clusterer used by the KMeans strategy.
// Passing nil panics: a cluster-less KMeans strategy cannot fit.
func WithClusterer(c Clusterer) Option {
	return func(o *Options) {
		if c == nil {
			panic("discretize: WithClusterer requires a non-nil Clusterer")
		}
		o.Clusterer = c
	}
}

// WithEncoderFactory substitutes the one-hot encoder construction.
// Passing nil panics.
func WithEncoderFactory(f EncoderFactory) Option {
	return func(o *Options) {
		if f == nil {
			panic("discretize: WithEncoderFactory requires a non-nil factory")
		}
		o.NewEncoder = f
	}
}
