// Package onehot encodes columns of integer labels as one-hot indicator
// blocks, one fixed-width block per input feature.
//
// 🚀 What is it for?
//
//	An Encoder is constructed with the full category list of every feature
//	up front, then armed with a single Fit call. Because the categories are
//	declared rather than observed, the encoded width never depends on which
//	labels actually appear in the data: every declared category owns exactly
//	one output column, even if no row ever uses it.
//
// ✨ Key properties:
//   - Explicit categories: Transform rejects labels that were not declared.
//   - Stable layout: output blocks are concatenated in input-feature order,
//     and columns within a block follow the declared category order.
//   - Dense or sparse: Transform returns a *mat.Dense by default, or a *CSR
//     (compressed sparse row, still a mat.Matrix) when built with Sparse().
//   - InverseTransform maps indicator blocks back to the declared labels by
//     per-block argmax.
//
// ⚙️ Usage:
//
//	enc := onehot.New([][]int{{0, 1, 2}, {0, 1}}, onehot.Sparse())
//	if err := enc.Fit(mat.NewDense(1, 2, nil)); err != nil { ... }
//	encoded, err := enc.Transform(labels)   // r×5 sparse matrix
//	back, err := enc.InverseTransform(encoded)
//
// Complexity: Transform is O(r·f) time for r rows and f features; a dense
// result costs O(r·w) memory for total width w, a sparse one O(r·f).
package onehot
