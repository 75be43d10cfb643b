// Package blob serializes packed feature matrices into a compact binary
// format for caching, snapshotting and transfer between processes.
//
// A feature blob has three sections:
//
//	header  (24 bytes)  magic, flags, counts and section offsets
//	index   (16 bytes per feature)  feature ID, bin count, word offset
//	payload (variable)  the bit-packed words of all packed columns,
//	                    optionally compressed as a whole
//
// Features are identified by the xxHash64 of their name, so the index stays
// fixed-size regardless of name length. Single-bin features appear in the
// index but contribute no payload words.
//
// Encoding walks a bitpack.Matrix column by column; decoding restores a
// matrix that adopts the payload words without copying, so lookups on a
// decoded blob cost the same as on a freshly built matrix.
package blob
