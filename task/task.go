// Package task encodes the learning task of a training run and the hard
// limits derived from the storage word width.
//
// A task is a single integer descriptor: a reserved negative value for
// regression, zero for classification with a class count only known at run
// time, and any positive N for classification with exactly N classes. The
// descriptor is fixed for the life of a training run.
package task

import (
	"fmt"
	"math/bits"
)

// Descriptor encodes the learning task. Use the constants and the
// Classification constructor instead of raw integers.
type Descriptor int

const (
	// Regression marks a continuous-target task.
	Regression Descriptor = -1

	// DynamicClassification marks classification whose class count is
	// supplied separately at run time.
	DynamicClassification Descriptor = 0
)

// Classification returns the descriptor for an n-class task. n must be at
// least 1; a 1-class task is degenerate but representable.
func Classification(n int) Descriptor {
	if n < 1 {
		panic(fmt.Sprintf("task: class count %d must be positive", n))
	}

	return Descriptor(n)
}

// MaxDimensions is the hard ceiling on interaction-tensor dimensionality.
// With the minimum of two bins per feature, binning N dimensions needs 2^N
// cells, which cannot exceed the addressable range; one further bit of the
// word width is reserved as headroom for bit manipulation during tensor
// indexing. Features with a single bin are stripped before this limit
// applies.
const MaxDimensions = bits.UintSize - 1

// Compile-time-specialized class counts. Counts in [FastClassesMin,
// FastClassesMax] get dedicated fixed-length gradient paths; everything else
// uses the generic runtime-length path. The bounds are a speed/size trade-off,
// not a correctness constraint.
const (
	FastClassesMin = 3
	FastClassesMax = 8
)

// IsRegression reports whether d is the regression task.
func (d Descriptor) IsRegression() bool {
	return d == Regression
}

// IsClassification reports whether d is any classification task, including
// the dynamic sentinel.
func (d Descriptor) IsClassification() bool {
	return d >= 0
}

// IsBinary reports whether d is 2-class classification under the policy that
// collapses two classes onto a single logit. When binary logits are
// expanded, no task is treated as the special binary case.
func (d Descriptor) IsBinary(expandBinaryLogits bool) bool {
	if expandBinaryLogits {
		return false
	}

	return d == 2
}

// IsMulticlass reports whether d is classification that is not the collapsed
// binary special case.
func (d Descriptor) IsMulticlass(expandBinaryLogits bool) bool {
	return d.IsClassification() && !d.IsBinary(expandBinaryLogits)
}

// VectorLength returns the number of scalar outputs (logits) produced per
// sample: 1 for regression, 1 for collapsed binary classification, and the
// class count otherwise.
//
// The receiver must be a resolved descriptor: calling this on
// DynamicClassification yields the degenerate answer for zero classes, so
// resolve with Pick first when a run-time class count is involved.
func (d Descriptor) VectorLength(expandBinaryLogits bool) int {
	collapse := Descriptor(2)
	if expandBinaryLogits {
		collapse = 1
	}
	if d <= collapse {
		return 1
	}

	return int(d)
}

// Pick resolves a possibly-dynamic specialized descriptor against the
// run-time descriptor. Specialized code paths carry a fixed descriptor;
// the generic path carries DynamicClassification and defers to the run-time
// value.
func Pick(specialized, runtime Descriptor) Descriptor {
	if specialized == DynamicClassification {
		return runtime
	}

	return specialized
}

// String implements fmt.Stringer.
func (d Descriptor) String() string {
	switch {
	case d == Regression:
		return "regression"
	case d == DynamicClassification:
		return "classification(dynamic)"
	case d > 0:
		return fmt.Sprintf("classification(%d)", int(d))
	default:
		return fmt.Sprintf("invalid(%d)", int(d))
	}
}
