package discretize

import (
	"fmt"
	"math"
)

// validate rejects configuration values outside the supported sets.
// It runs before any edge computation so a failed Fit never leaves
// partially updated state behind.
func (o *Options) validate() error {
	switch o.Strategy {
	case Uniform, Quantile, KMeans:
	default:
		return fmt.Errorf("%w: Strategy(%d)", ErrUnknownStrategy, o.Strategy)
	}
	switch o.Encode {
	case OneHotSparse, OneHotDense, Ordinal:
	default:
		return fmt.Errorf("%w: Encoding(%d)", ErrUnknownEncoding, o.Encode)
	}
	switch o.Precision {
	case PrecisionNative, Precision32, Precision64:
	default:
		return fmt.Errorf("%w: Precision(%d)", ErrUnknownPrecision, o.Precision)
	}

	return nil
}

// resolve normalizes a BinSpec into one requested bin count per feature.
//
// A scalar count broadcasts to every feature; Auto applies Sturges' rule,
// ceil(log2(nSamples)+1), and broadcasts the result; a per-feature slice is
// checked for length and copied. Counts below 2 are rejected, and the
// per-feature error names every offending index.
func (s BinSpec) resolve(nSamples, nFeatures int) ([]int, error) {
	if s.perFeature != nil {
		if len(s.perFeature) != nFeatures {
			return nil, fmt.Errorf("%w: got %d counts for %d features", ErrBinCountShape, len(s.perFeature), nFeatures)
		}
		var bad []int
		for j, k := range s.perFeature {
			if k < 2 {
				bad = append(bad, j)
			}
		}
		if len(bad) > 0 {
			return nil, fmt.Errorf("%w: offending feature indices %v", ErrBadBinCount, bad)
		}

		return append([]int(nil), s.perFeature...), nil
	}

	k := s.count
	if s.auto {
		k = int(math.Ceil(math.Log2(float64(nSamples)) + 1))
	}
	if k < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBinCount, k)
	}

	counts := make([]int, nFeatures)
	for j := range counts {
		counts[j] = k
	}

	return counts, nil
}
