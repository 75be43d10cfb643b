// Package loss computes per-sample gradients and hessians for the four task
// families of a gradient-boosting trainer: regression, binary classification,
// multiclass classification, and multi-task (multi-label) binary
// classification.
//
// Objectives are selected at training setup from a configuration string of
// the form name[:param=value[,param=value]*], matched case-insensitively.
// An unknown name or a malformed parameter list is a configuration error;
// training never falls back to a default objective.
//
// Every objective is immutable after construction and free of shared mutable
// state: one invocation reads only its inputs and writes only the output
// slots handed to it, so callers may evaluate samples in parallel as long as
// output regions do not overlap. The Compute helpers in this package do that
// partitioning.
//
// Multiclass objectives carry two code paths: fixed-length fast paths for
// class counts in the compile-time-specialized range and one generic
// runtime-length path. Both produce the same values up to floating-point
// rounding, which is asserted by the package tests rather than assumed.
package loss
