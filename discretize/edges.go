package discretize

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// edgeTol: adjacent quantile/kmeans edges closer than this collapse into a
// single bin during fitting.
const edgeTol = 1e-8

// computeEdges builds the edge sequence of every feature and writes the
// effective bin counts back into nBins. Feature order is preserved.
func (d *Discretizer) computeEdges(cols [][]float64, nBins []int) ([][]float64, error) {
	edges := make([][]float64, len(cols))
	for j, col := range cols {
		e, n, err := d.featureEdges(j, col, nBins[j])
		if err != nil {
			return nil, err
		}
		edges[j] = e
		nBins[j] = n
	}

	return edges, nil
}

// featureEdges computes the edge sequence for one feature with requested
// bin count k, returning the edges and the effective bin count.
//
// A constant column collapses to one unbounded bin. For the quantile and
// kmeans strategies, edges closer than edgeTol to their predecessor are
// removed afterwards; the uniform strategy is evenly spaced by construction
// and is not filtered.
func (d *Discretizer) featureEdges(j int, col []float64, k int) ([]float64, int, error) {
	mn, mx := floats.Min(col), floats.Max(col)
	if mn == mx {
		d.emit(j, fmt.Sprintf("feature %d is constant and collapses to a single bin", j))

		return []float64{math.Inf(-1), math.Inf(1)}, 1, nil
	}

	var edges []float64
	switch d.opts.Strategy {
	case Uniform:
		return floats.Span(make([]float64, k+1), mn, mx), k, nil

	case Quantile:
		sorted := append([]float64(nil), col...)
		sort.Float64s(sorted)
		edges = make([]float64, k+1)
		for i := range edges {
			edges[i] = percentile(sorted, float64(i)*100/float64(k))
		}

	case KMeans:
		// Deterministic seeding: one center per uniform sub-interval midpoint.
		uniform := floats.Span(make([]float64, k+1), mn, mx)
		init := make([]float64, k)
		for i := range init {
			init[i] = (uniform[i] + uniform[i+1]) / 2
		}
		centers, err := d.opts.Clusterer.Centers(col, init)
		if err != nil {
			return nil, 0, err
		}
		// The clusterer does not promise sorted output.
		sort.Float64s(centers)

		edges = make([]float64, 0, len(centers)+1)
		edges = append(edges, mn)
		for i := 1; i < len(centers); i++ {
			edges = append(edges, (centers[i-1]+centers[i])/2)
		}
		edges = append(edges, mx)
	}

	kept := filterEdges(edges)
	switch {
	case len(kept) < 2:
		// Every edge above the minimum sat within tolerance of its
		// predecessor; the feature has no resolvable structure left.
		d.emit(j, fmt.Sprintf("all bins in feature %d are narrower than %g; feature collapses to a single bin", j, edgeTol))

		return []float64{math.Inf(-1), math.Inf(1)}, 1, nil
	case len(kept) != len(edges):
		d.emit(j, fmt.Sprintf("bins narrower than %g in feature %d were removed; consider fewer bins", edgeTol, j))
	}

	return kept, len(kept) - 1, nil
}

// filterEdges drops every edge whose gap from its immediate predecessor in
// the original sequence is at most edgeTol. The first edge is always kept;
// the result is strictly increasing because a kept edge's gap to the last
// kept edge is never smaller than its gap to its immediate predecessor.
func filterEdges(edges []float64) []float64 {
	kept := make([]float64, 0, len(edges))
	kept = append(kept, edges[0])
	for i := 1; i < len(edges); i++ {
		if edges[i]-edges[i-1] > edgeTol {
			kept = append(kept, edges[i])
		}
	}

	return kept
}

// percentile computes the linear-interpolation percentile of a sorted
// sample: rank p in [0,100] maps to position p/100·(n−1), interpolating
// between the two flanking order statistics.
func percentile(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)

	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
