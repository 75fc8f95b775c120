// Package kmeans provides deterministic one-dimensional k-means clustering
// with caller-supplied initial centers.
//
// 🚀 What is it for?
//
//	Plain Lloyd iteration over a single numeric column: assign every value
//	to its nearest center, move each center to the mean of its members,
//	repeat until the centers stop moving. The caller chooses the initial
//	centers, so two runs over the same data always agree — there is no
//	random seeding step.
//
// ✨ Key properties:
//   - Deterministic: the result is a pure function of (data, init).
//   - Empty clusters keep their previous center instead of being dropped,
//     so the returned slice always has len(init) centers.
//   - Returned centers are NOT sorted; their order follows the assignment
//     history, not the number line. Sort them if you need order.
//
// ⚙️ Usage:
//
//	centers, err := kmeans.Cluster1D(column, []float64{0.5, 1.5, 2.5})
//	if err != nil {
//	  // handle ErrEmptyData or ErrEmptyInit
//	}
//	sort.Float64s(centers)
//
// Complexity: O(sweeps · n · k) time, O(k) extra memory.
package kmeans
