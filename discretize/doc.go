// Package discretize bins continuous numeric features into ordered
// intervals, optionally one-hot encodes the bin assignment, and maps bin
// assignments back to representative values.
//
// 🚀 What is it?
//
//	A k-bins discretizer over gonum matrices: Fit learns per-feature bin
//	edges from training data, Transform assigns every new value an integer
//	bin index (or its one-hot expansion), and InverseTransform reconstructs
//	the center of the assigned bin. Each feature is handled independently,
//	so bin counts may legitimately differ across features.
//
// ✨ Key features:
//   - Three edge-placement strategies: Uniform (equal width), Quantile
//     (equal population), KMeans (1-D cluster midpoints).
//   - Three output encodings: Ordinal, OneHotDense, OneHotSparse.
//   - Bin counts per feature: one count for all, an explicit slice, or
//     Sturges' rule from the sample count.
//   - Numerically stable edge assignment: values sitting on a boundary go
//     to the upper bin deterministically, not wherever float noise lands.
//   - Degenerate features never fail a fit: constant columns and
//     sub-tolerance bins collapse with a Diagnostic, not an error.
//
// ⚙️ Usage:
//
//	d := discretize.New(
//	  discretize.WithBins(discretize.Count(3)),
//	  discretize.WithStrategy(discretize.Uniform),
//	  discretize.WithEncoding(discretize.Ordinal),
//	)
//	if err := d.Fit(train); err != nil { ... }
//	binned, err := d.Transform(test)
//	approx, err := d.InverseTransform(binned)
//
// Concurrency: Fit is a single-writer operation with no internal locking;
// any number of goroutines may call the transform methods once a Fit has
// completed. Caller matrices are only ever read.
//
// The clustering and encoding collaborators are capability interfaces
// (Clusterer, CategoricalEncoder) defaulting to the sibling kmeans and
// onehot packages; substitute them through options.
package discretize
