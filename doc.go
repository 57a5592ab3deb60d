// Package streams implements fused indexed streams: a small set of composable
// cursors over sorted, sparse data (vectors, CSR matrices, ordered trees) that
// support worst-case-optimal multiway joins, set intersection/union, and sparse
// linear algebra without materializing intermediate results.
//
// Every source and combinator implements the same Stream interface (Valid,
// Ready, Index, Value, Seek, Next), so pipelines built from ZipWith, Union,
// Chain and Map nest into a single cursor that is driven in one pass; each
// combinator calls its children through that interface.
package streams
