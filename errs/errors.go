// Package errs defines the sentinel errors shared across boostcore packages.
//
// All errors are plain sentinels so callers can match them with errors.Is
// even when they have been wrapped with additional context.
package errs

import "errors"

var (
	// ErrSizeOverflow indicates that a requested element count multiplied by
	// the element size cannot be represented, so the allocation was refused.
	ErrSizeOverflow = errors.New("requested size overflows addressable range")

	// ErrInvalidBinCount indicates a feature bin count that cannot be packed
	// (negative, or larger than a storage word can represent).
	ErrInvalidBinCount = errors.New("invalid bin count")

	// ErrBinOutOfRange indicates a sample's bin index is not below the
	// feature's declared bin count.
	ErrBinOutOfRange = errors.New("bin index out of range")

	// ErrSampleCountMismatch indicates a feature column whose length differs
	// from the matrix sample count.
	ErrSampleCountMismatch = errors.New("sample count mismatch")

	// ErrUnknownObjective indicates an objective name with no registration.
	// Training must not fall back to a default objective.
	ErrUnknownObjective = errors.New("unknown objective")

	// ErrMalformedObjective indicates an objective configuration string that
	// does not match name[:param=value[,param=value]*].
	ErrMalformedObjective = errors.New("malformed objective configuration")

	// ErrParamOutOfDomain indicates a parameter value outside the domain
	// accepted by the chosen objective.
	ErrParamOutOfDomain = errors.New("objective parameter out of domain")

	// ErrTargetOutOfRange indicates a classification target outside
	// [0, classCount) or a multitask label that is not 0 or 1.
	ErrTargetOutOfRange = errors.New("target out of range")

	// ErrInvalidHeaderSize indicates a column blob too short to contain its
	// fixed header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidHeaderFlags indicates a column blob header with an unknown
	// magic number or unsupported flag bits.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrInvalidIndexEntry indicates a truncated or inconsistent feature
	// index entry in a column blob.
	ErrInvalidIndexEntry = errors.New("invalid index entry")

	// ErrFeatureNotFound indicates a feature ID lookup that has no entry in
	// the decoded column blob.
	ErrFeatureNotFound = errors.New("feature not found")
)
