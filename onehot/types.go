package onehot

import "errors"

// Sentinel errors returned by the Encoder.
var (
	// ErrNotFitted indicates Transform or InverseTransform was called
	// before a successful Fit.
	ErrNotFitted = errors.New("onehot: encoder is not fitted; call Fit first")

	// ErrNoCategories indicates the encoder was built with no features.
	ErrNoCategories = errors.New("onehot: at least one feature with categories is required")

	// ErrEmptyCategories indicates some feature declared no categories.
	ErrEmptyCategories = errors.New("onehot: every feature must declare at least one category")

	// ErrDuplicateCategory indicates a feature declared the same label twice.
	ErrDuplicateCategory = errors.New("onehot: duplicate category label within a feature")

	// ErrShapeMismatch indicates the input column count does not match the
	// declared feature count (Transform) or the encoded width (InverseTransform).
	ErrShapeMismatch = errors.New("onehot: input shape does not match the declared categories")

	// ErrUnknownLabel indicates a value outside the declared category set.
	ErrUnknownLabel = errors.New("onehot: label was not declared as a category")

	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("onehot: input matrix is nil")
)

// Options configures an Encoder.
//
// Sparse – if true, Transform returns a *CSR instead of a *mat.Dense.
type Options struct {
	Sparse bool
}

// Option is a functional option for configuring an Encoder.
type Option func(*Options)

// Sparse makes Transform return a compressed-sparse-row matrix.
// Inverse transformation accepts either representation regardless.
func Sparse() Option {
	return func(o *Options) {
		o.Sparse = true
	}
}
