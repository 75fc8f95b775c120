// Package binned is your in-memory toolkit for turning continuous numeric
// features into ordered bins — fitting per-feature bin edges, encoding bin
// membership, and mapping bins back to representative values.
//
// 🚀 What is binned?
//
//	A small, composable discretization library over gonum matrices:
//		• Edge fitting: uniform width, equal-population quantiles, or 1-D k-means
//		• Assignment: numerically stable digitizing with out-of-range clamping
//		• Encodings: ordinal indices, dense one-hot, sparse (CSR) one-hot
//		• Inverse mapping: bin index back to the bin's center value
//		• Config: functional options, or a YAML document for pipelines
//
// ✨ Why choose binned?
//
//   - Predictable edges – every boundary rule is deterministic, including
//     the k-means seeding; refits reproduce bit-for-bit
//   - Degenerate-proof – constant columns and collapsed bins shrink the bin
//     count with a diagnostic instead of failing the fit
//   - Swappable collaborators – the clusterer and the categorical encoder
//     are interfaces; bring your own without touching the core
//
// Everything is organized under three subpackages:
//
//	discretize/ — the Discretizer: Fit, Transform, InverseTransform
//	kmeans/     — deterministic 1-D Lloyd clustering with explicit seeds
//	onehot/     — declared-category one-hot encoder, dense or CSR output
//
// Quick ASCII example, three uniform bins over one feature:
//
//	min ──────┬──────┬────── max
//	   bin 0  │ bin 1│  bin 2
//	          edges[1] edges[2]
//
// Values below min or above max clamp into the outermost bins; a value
// exactly on an edge always belongs to the upper bin.
//
//	go get github.com/katalvlaran/binned/discretize
package binned
