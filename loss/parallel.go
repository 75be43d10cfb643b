package loss

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/arloliu/boostcore/errs"
	"github.com/arloliu/boostcore/internal/arith"
)

// bufferHeader is the fixed part of a gradient buffer record.
type bufferHeader struct {
	samples   int
	vectorLen int
}

// GradientBuffer is the per-round gradient/hessian stream: one GradHess per
// sample per output dimension, laid out sample-major in a single allocation
// co-located with its shape header. Buffers are transient; they are
// recomputed every boosting round and owned exclusively by their creator.
type GradientBuffer struct {
	rec *arith.Record[bufferHeader, GradHess]
}

// NewGradientBuffer allocates a buffer for samples x vectorLength results.
// It returns errs.ErrSizeOverflow instead of allocating when the product is
// not representable.
func NewGradientBuffer(samples, vectorLength int) (*GradientBuffer, error) {
	if samples < 0 || vectorLength < 1 {
		return nil, fmt.Errorf("gradient buffer %dx%d: %w", samples, vectorLength, errs.ErrSizeOverflow)
	}
	if arith.MulOverflows(uint(samples), uint(vectorLength)) {
		return nil, fmt.Errorf("gradient buffer %dx%d: %w", samples, vectorLength, errs.ErrSizeOverflow)
	}

	rec := arith.NewRecord[bufferHeader, GradHess](uint(samples) * uint(vectorLength))
	if rec == nil {
		return nil, fmt.Errorf("gradient buffer %dx%d: %w", samples, vectorLength, errs.ErrSizeOverflow)
	}
	rec.Header = bufferHeader{samples: samples, vectorLen: vectorLength}

	return &GradientBuffer{rec: rec}, nil
}

// Samples returns the number of samples the buffer holds.
func (b *GradientBuffer) Samples() int { return b.rec.Header.samples }

// VectorLength returns the number of output dimensions per sample.
func (b *GradientBuffer) VectorLength() int { return b.rec.Header.vectorLen }

// Values returns the full sample-major result stream.
func (b *GradientBuffer) Values() []GradHess { return b.rec.Trailing() }

// Row returns the slice of results belonging to one sample.
func (b *GradientBuffer) Row(sample int) []GradHess {
	k := b.rec.Header.vectorLen
	return b.rec.Trailing()[sample*k : (sample+1)*k]
}

// parallelRanges splits [0, n) into one contiguous chunk per worker and
// invokes fn concurrently. Chunks are disjoint, so workers never share an
// output slot and no locking is needed. workers <= 0 selects GOMAXPROCS.
func parallelRanges(n, workers int, fn func(begin, end int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for begin := 0; begin < n; begin += chunk {
		end := min(begin+chunk, n)
		wg.Add(1)
		go func(begin, end int) {
			defer wg.Done()
			fn(begin, end)
		}(begin, end)
	}
	wg.Wait()
}

// ComputeRegression fills out with one gradient/hessian per sample for a
// regression objective. scores, targets and out share a length.
func ComputeRegression(obj Regression, scores, targets []float64, out []GradHess, workers int) error {
	if len(scores) != len(targets) || len(scores) != len(out) {
		return fmt.Errorf("regression: %d scores, %d targets, %d outputs: %w",
			len(scores), len(targets), len(out), errs.ErrSampleCountMismatch)
	}

	parallelRanges(len(scores), workers, func(begin, end int) {
		for i := begin; i < end; i++ {
			out[i] = obj.GradHess(scores[i], targets[i])
		}
	})

	return nil
}

// ComputeBinary fills out with one gradient/hessian per sample for a binary
// objective. Labels are validated to be 0 or 1 before the parallel region.
func ComputeBinary(obj Binary, scores []float64, labels []int, out []GradHess, workers int) error {
	if len(scores) != len(labels) || len(scores) != len(out) {
		return fmt.Errorf("binary: %d scores, %d labels, %d outputs: %w",
			len(scores), len(labels), len(out), errs.ErrSampleCountMismatch)
	}
	for i, label := range labels {
		if label != 0 && label != 1 {
			return fmt.Errorf("binary: sample %d label %d: %w", i, label, errs.ErrTargetOutOfRange)
		}
	}

	parallelRanges(len(scores), workers, func(begin, end int) {
		for i := begin; i < end; i++ {
			out[i] = obj.GradHess(scores[i], labels[i])
		}
	})

	return nil
}

// ComputeMulticlass fills out with classes gradients/hessians per sample.
// scores and out are sample-major with classes entries per sample; targets
// holds one class index per sample.
func ComputeMulticlass(obj Multiclass, scores []float64, targets []int, classes int, out []GradHess, workers int) error {
	if classes < 1 {
		return fmt.Errorf("multiclass: %d classes: %w", classes, errs.ErrTargetOutOfRange)
	}
	n := len(targets)
	if len(scores) != n*classes || len(out) != n*classes {
		return fmt.Errorf("multiclass: %d scores, %d targets x %d classes, %d outputs: %w",
			len(scores), n, classes, len(out), errs.ErrSampleCountMismatch)
	}
	for i, class := range targets {
		if class < 0 || class >= classes {
			return fmt.Errorf("multiclass: sample %d class %d of %d: %w", i, class, classes, errs.ErrTargetOutOfRange)
		}
	}

	parallelRanges(n, workers, func(begin, end int) {
		for i := begin; i < end; i++ {
			row := scores[i*classes : (i+1)*classes]
			obj.GradHessVec(row, targets[i], out[i*classes:(i+1)*classes])
		}
	})

	return nil
}

// ComputeMultitaskBinary fills out with tasks gradients/hessians per sample.
// scores, labels and out are sample-major with tasks entries per sample.
func ComputeMultitaskBinary(obj MultitaskBinary, scores []float64, labels []int, tasks int, out []GradHess, workers int) error {
	if tasks < 1 {
		return fmt.Errorf("multitask: %d tasks: %w", tasks, errs.ErrTargetOutOfRange)
	}
	if len(scores) != len(labels) || len(scores) != len(out) || len(scores)%tasks != 0 {
		return fmt.Errorf("multitask: %d scores, %d labels, %d outputs for %d tasks: %w",
			len(scores), len(labels), len(out), tasks, errs.ErrSampleCountMismatch)
	}
	for i, label := range labels {
		if label != 0 && label != 1 {
			return fmt.Errorf("multitask: slot %d label %d: %w", i, label, errs.ErrTargetOutOfRange)
		}
	}

	n := len(scores) / tasks
	parallelRanges(n, workers, func(begin, end int) {
		for i := begin; i < end; i++ {
			lo, hi := i*tasks, (i+1)*tasks
			obj.GradHessVec(scores[lo:hi], labels[lo:hi], out[lo:hi])
		}
	})

	return nil
}
