package streams

import "slices"

// MatVec computes the sparse matrix-vector product mat * vec as a stream of
// (row index, dot product) pairs. Each row's dot product is a Contract of a
// ZipWith between the row's galloping cursor and vec's — set intersection
// generalized to multiply-and-sum.
func MatVec[T Numeric](mat *SparseCSRMatrix[T], vec SparseVector[int, T]) Stream[int, T] {
	return Map(mat.Stream(), func(_ int, row Stream[int, T]) T {
		return Contract(ZipWith(row, vec.GallopStream(), func(a, b T) T { return a * b }))
	})
}

// MatMulRow computes one row of mat * other (both CSR) as a SparseVector:
// for the given row of mat, it scatters mat[row,k] * other[k,:] into a dense
// accumulator of width otherCols, then gathers the touched columns back into
// sparse form. This is the standard sparse-times-sparse row algorithm
// (scatter-then-gather); CSR's row axis doesn't give a cheap way to
// intersect two entire matrices' sparsity patterns the way two sorted
// vectors can be zipped, so it isn't expressed as stream fusion.
func MatMulRow[T Numeric](mat *SparseCSRMatrix[T], other *SparseCSRMatrix[T], row, otherCols int) SparseVector[int, T] {
	acc := make([]T, otherCols)
	touchedFlag := make([]bool, otherCols)
	var touched []int

	ForEach(mat.rowView(row), func(k int, coeff T) {
		start, end := other.Rows[k], other.Rows[k+1]
		for idx := start; idx < end; idx++ {
			col := other.Cols[idx]
			if !touchedFlag[col] {
				touchedFlag[col] = true
				touched = append(touched, col)
			}
			acc[col] += coeff * other.Vals[idx]
		}
	})

	slices.Sort(touched)
	inds := make([]int, len(touched))
	vals := make([]T, len(touched))
	for i, col := range touched {
		inds[i] = col
		vals[i] = acc[col]
	}
	return NewSparseVector(inds, vals)
}
