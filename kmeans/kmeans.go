package kmeans

import (
	"errors"
	"math"
)

// Sentinel errors returned by Cluster1D.
var (
	// ErrEmptyData indicates the input column has no values.
	ErrEmptyData = errors.New("kmeans: data must be non-empty")

	// ErrEmptyInit indicates no initial centers were supplied.
	ErrEmptyInit = errors.New("kmeans: initial centers must be non-empty")
)

const (
	// maxSweeps bounds the number of Lloyd sweeps per call.
	maxSweeps = 300

	// centerTol: a sweep that moves no center farther than this converged.
	centerTol = 1e-6
)

// Cluster1D clusters a one-dimensional column into len(init) groups by
// Lloyd iteration seeded at the given initial centers.
//
// Each sweep assigns every value to its nearest current center, then moves
// each center to the mean of the values assigned to it. A cluster that
// received no values keeps its previous center. Iteration stops once the
// largest center movement in a sweep falls below 1e-6, or after 300 sweeps.
//
// The returned slice has exactly len(init) centers in unspecified order;
// the input slices are never modified.
func Cluster1D(data, init []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if len(init) == 0 {
		return nil, ErrEmptyInit
	}

	k := len(init)
	centers := append([]float64(nil), init...)
	sums := make([]float64, k)
	counts := make([]int, k)

	for sweep := 0; sweep < maxSweeps; sweep++ {
		for c := 0; c < k; c++ {
			sums[c] = 0
			counts[c] = 0
		}
		for _, v := range data {
			c := nearest(centers, v)
			sums[c] += v
			counts[c]++
		}

		moved := 0.0
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			next := sums[c] / float64(counts[c])
			if d := math.Abs(next - centers[c]); d > moved {
				moved = d
			}
			centers[c] = next
		}
		if moved < centerTol {
			break
		}
	}

	return centers, nil
}

// nearest returns the index of the center closest to v, preferring the
// lowest index on ties.
func nearest(centers []float64, v float64) int {
	best := 0
	bestDist := math.Abs(v - centers[0])
	for c := 1; c < len(centers); c++ {
		if d := math.Abs(v - centers[c]); d < bestDist {
			best = c
			bestDist = d
		}
	}

	return best
}
