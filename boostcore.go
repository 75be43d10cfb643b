// Package boostcore provides the numeric core of a gradient boosting
// engine: bit-packed feature storage, overflow-safe size arithmetic, task
// shape handling and a registry of boosting objectives.
//
// # Core Features
//
//   - Bit-packed per-sample bin storage with constant-time extraction
//   - Specialized extraction paths for hot bit widths, with a generic path
//     proven equivalent
//   - Objectives for regression, binary, multiclass and multitask binary
//     tasks, selected by a parseable string such as "rmse:power=2"
//   - Per-sample gradient/hessian evaluation parallelized over disjoint
//     sample ranges
//   - A binary blob format for caching packed matrices, with optional
//     Zstd, S2 or LZ4 compression and hash-based feature lookup
//
// # Basic Usage
//
// Packing features and evaluating an objective:
//
//	import "github.com/arloliu/boostcore"
//
//	// Pack two discretized features for 1000 samples.
//	matrix := boostcore.NewMatrix(1000)
//	matrix.AddFeature(256, ageBins)
//	matrix.AddFeature(3, regionBins)
//
//	// Resolve the objective from its configuration string.
//	objective, err := boostcore.ParseObjective("log_loss")
//	if err != nil {
//	    return err
//	}
//
// Caching the packed matrix as a blob:
//
//	data, _ := boostcore.EncodeMatrix(matrix, []string{"age", "region"},
//	    blob.WithCompression(format.CompressionZstd))
//	set, _ := blob.Decode(data)
//	bin, _ := set.Bin("age", 42)
//
// # Package Structure
//
// This package provides top-level wrappers around the bitpack, loss and
// blob packages, simplifying the most common use cases. For fine-grained
// control, such as custom numeric policies or big-endian blobs, use those
// packages directly.
package boostcore

import (
	"github.com/arloliu/boostcore/bitpack"
	"github.com/arloliu/boostcore/blob"
	"github.com/arloliu/boostcore/internal/hash"
	"github.com/arloliu/boostcore/loss"
)

// NewMatrix creates an empty packed matrix for the given sample count.
func NewMatrix(samples int) *bitpack.Matrix {
	return bitpack.NewMatrix(samples)
}

// ParseObjective resolves an objective configuration string, such as
// "log_loss" or "rmse:power=1.5", under the default numeric policy. For a
// custom policy, use loss.Parse with an explicit loss.Config.
func ParseObjective(spec string) (*loss.Objective, error) {
	return loss.Parse(spec, loss.DefaultConfig())
}

// EncodeMatrix serializes a packed matrix into a feature blob. names holds
// one feature name per matrix column.
func EncodeMatrix(m *bitpack.Matrix, names []string, opts ...blob.EncoderOption) ([]byte, error) {
	encoder, err := blob.NewEncoder(m.NumSamples(), opts...)
	if err != nil {
		return nil, err
	}
	if err := encoder.AddMatrix(m, names); err != nil {
		return nil, err
	}

	return encoder.Finish()
}

// DecodeMatrix decodes a feature blob produced by EncodeMatrix.
func DecodeMatrix(data []byte) (*blob.FeatureSet, error) {
	return blob.Decode(data)
}

// FeatureID returns the 64-bit hash identifying a feature name in blobs.
func FeatureID(name string) uint64 {
	return hash.FeatureID(name)
}
