// Package bitpack stores per-sample feature bin indices densely packed into
// fixed-width storage words.
//
// Each feature's bin count determines how many bits one bin index needs and
// therefore how many indices fit in a single 64-bit word. The legal
// items-per-word values form a fixed progression (64, 32, 21, 16, 12, 10, 9,
// 8, 7, 6, 5, 4, 3, 2, 1): the distinct values of 64/k for integer k >= 1.
// Widths on the hot end of the progression get shift-by-constant extraction
// paths; every other width shares one runtime-width path. Both paths extract
// the bin index of any sample/feature pair in constant time.
//
// A feature with a single bin carries no information and is excluded from the
// packed representation entirely.
package bitpack
