package discretize

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Numeric-stability offsets applied before edge comparison. A value that is
// mathematically on an edge but carries float representation error is
// nudged upward by atol + rtol·|v| so it lands in the upper bin, matching
// the edge's intended decimal value.
const (
	assignATol = 1e-8
	assignRTol = 1e-5
)

// Discretizer bins continuous features into ordered intervals.
//
// Fit learns one strictly increasing edge sequence per feature and, for the
// one-hot encodings, primes the categorical encoder with the effective bin
// counts. The zero value is not usable; construct with New. A later Fit
// fully replaces the fitted state.
type Discretizer struct {
	opts Options

	nFeatures int
	nBins     []int
	edges     [][]float64
	encoder   CategoricalEncoder
	fitted    bool
}

// New builds a Discretizer from DefaultOptions overridden by opts.
func New(opts ...Option) *Discretizer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Discretizer{opts: o}
}

// Fit learns bin edges for every feature of x.
//
// Configuration and bin-count problems are rejected before any edge is
// computed, so a failed Fit never leaves partial state behind. Degenerate
// features (constant columns, collapsed bins) are not errors; they shrink
// the effective bin count and emit a Diagnostic.
//
// Errors: ErrNilMatrix, ErrEmptyInput, ErrUnknownStrategy,
// ErrUnknownEncoding, ErrUnknownPrecision, ErrBadBinCount, ErrBinCountShape,
// and anything the clusterer or encoder returns.
func (d *Discretizer) Fit(x mat.Matrix) error {
	if x == nil {
		return ErrNilMatrix
	}
	r, c := x.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyInput
	}
	if err := d.opts.validate(); err != nil {
		return err
	}
	nBins, err := d.opts.Bins.resolve(r, c)
	if err != nil {
		return err
	}

	cols := make([][]float64, c)
	for j := 0; j < c; j++ {
		cols[j] = mat.Col(nil, j, x)
	}
	edges, err := d.computeEdges(cols, nBins)
	if err != nil {
		return err
	}

	var encoder CategoricalEncoder
	if d.opts.Encode != Ordinal {
		categories := make([][]int, c)
		for j, n := range nBins {
			labels := make([]int, n)
			for b := range labels {
				labels[b] = b
			}
			categories[j] = labels
		}
		encoder = d.opts.NewEncoder(categories, d.opts.Encode == OneHotSparse)
		// One placeholder row arms the encoder; it never sees real data
		// during Fit, so the encoded width depends only on the declared
		// bins, not on which bins the training data happened to reach.
		if err = encoder.Fit(mat.NewDense(1, c, nil)); err != nil {
			return err
		}
	}

	d.nFeatures = c
	d.nBins = nBins
	d.edges = edges
	d.encoder = encoder
	d.fitted = true

	return nil
}

// Transform assigns every value of x to a bin and returns the configured
// representation: a *mat.Dense of ordinal indices, a dense one-hot
// expansion, or a sparse one-hot expansion (*onehot.CSR under the default
// factory). x is only read.
//
// Errors: ErrNotFitted, ErrNilMatrix, ErrShapeMismatch, and anything the
// encoder returns.
func (d *Discretizer) Transform(x mat.Matrix) (mat.Matrix, error) {
	indices, err := d.assign(x)
	if err != nil {
		return nil, err
	}
	if d.opts.Encode == Ordinal {
		d.applyPrecision(indices)

		return indices, nil
	}

	encoded, err := d.encoder.Transform(indices)
	if err != nil {
		return nil, err
	}
	if dense, ok := encoded.(*mat.Dense); ok {
		d.applyPrecision(dense)
	}
	// Sparse indicator values are 0/1, exact at every supported width.

	return encoded, nil
}

// FitTransform fits on x and immediately transforms it.
func (d *Discretizer) FitTransform(x mat.Matrix) (mat.Matrix, error) {
	if err := d.Fit(x); err != nil {
		return nil, err
	}

	return d.Transform(x)
}

// InverseTransform maps binned data back to representative values: the
// midpoint of the two edges flanking each bin index. One-hot input is first
// decoded through the encoder. The reconstruction is lossy by design — it
// recovers the bin center, never the original value.
//
// Errors: ErrNotFitted, ErrNilMatrix, ErrShapeMismatch, ErrBadBinIndex, and
// anything the encoder returns.
func (d *Discretizer) InverseTransform(x mat.Matrix) (*mat.Dense, error) {
	if !d.fitted {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, ErrNilMatrix
	}

	if d.opts.Encode != Ordinal {
		decoded, err := d.encoder.InverseTransform(x)
		if err != nil {
			return nil, err
		}
		x = decoded
	}

	r, c := x.Dims()
	if c != d.nFeatures {
		return nil, fmt.Errorf("%w: got %d features, fitted with %d", ErrShapeMismatch, c, d.nFeatures)
	}

	out := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		edges := d.edges[j]
		for i := 0; i < r; i++ {
			idx := int(x.At(i, j))
			if idx < 0 || idx >= d.nBins[j] {
				return nil, fmt.Errorf("%w: bin %d for feature %d with %d bins", ErrBadBinIndex, idx, j, d.nBins[j])
			}
			out.Set(i, j, (edges[idx]+edges[idx+1])/2)
		}
	}
	d.applyPrecision(out)

	return out, nil
}

// assign digitizes x against the fitted edges into integer bin indices.
func (d *Discretizer) assign(x mat.Matrix) (*mat.Dense, error) {
	if !d.fitted {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, ErrNilMatrix
	}
	r, c := x.Dims()
	if c != d.nFeatures {
		return nil, fmt.Errorf("%w: got %d features, fitted with %d", ErrShapeMismatch, c, d.nFeatures)
	}

	out := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		// The first edge is an observed extreme kept for inverse mapping,
		// not an assignment boundary: the outermost bins are unbounded.
		bounds := d.edges[j][1:]
		top := d.nBins[j] - 1
		for i := 0; i < r; i++ {
			v := x.At(i, j)
			shifted := v + assignATol + assignRTol*math.Abs(v)
			idx := sort.Search(len(bounds), func(b int) bool { return bounds[b] > shifted })
			if idx > top {
				// Values beyond the fitted maximum collapse into the last bin.
				idx = top
			}
			out.Set(i, j, float64(idx))
		}
	}

	return out, nil
}

// applyPrecision narrows matrix values in place when float32 output is
// requested; native and explicit float64 are already the natural width.
func (d *Discretizer) applyPrecision(m *mat.Dense) {
	if d.opts.Precision != Precision32 {
		return
	}
	m.Apply(func(_, _ int, v float64) float64 { return float64(float32(v)) }, m)
}

// emit delivers a Diagnostic to the configured sink, if any.
func (d *Discretizer) emit(feature int, msg string) {
	if d.opts.Diagnostics != nil {
		d.opts.Diagnostics(Diagnostic{Feature: feature, Message: msg})
	}
}

// IsFitted reports whether a successful Fit has completed.
func (d *Discretizer) IsFitted() bool { return d.fitted }

// NFeatures returns the fitted feature count, or 0 before Fit.
func (d *Discretizer) NFeatures() int { return d.nFeatures }

// NBins returns a copy of the effective per-feature bin counts,
// or nil before Fit.
func (d *Discretizer) NBins() []int {
	if !d.fitted {
		return nil
	}

	return append([]int(nil), d.nBins...)
}

// BinEdges returns a deep copy of the fitted per-feature edge sequences.
// Each sequence is strictly increasing with length NBins()[j]+1; the outer
// entries of a constant feature are ±Inf. Nil before Fit.
func (d *Discretizer) BinEdges() [][]float64 {
	if !d.fitted {
		return nil
	}

	out := make([][]float64, len(d.edges))
	for j, e := range d.edges {
		out[j] = append([]float64(nil), e...)
	}

	return out
}
