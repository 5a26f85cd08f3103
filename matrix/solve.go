package matrix

import "math"

// Solve performs Gaussian elimination with partial pivoting on an
// n×(n+1) matrix encoding a linear system in canonical form, one
// equation per row with the constant term in the last column:
//
//	2x + 3y − 3 = 0  →  [2 3 −3]
//
// It returns the unique solution vector of length n, or
// ErrNoUniqueSolution when the system is singular, under-determined,
// or inconsistent. The empty system (zero columns) yields the empty
// vector. The input matrix is consumed as scratch space and left in
// row-echelon form up to a row permutation.
//
// Complexity: O(n³) time, O(n) extra space.
func Solve(m Matrix) ([]float64, error) {
	if m == nil {
		return nil, opErrorf(opSolve, ErrNilMatrix)
	}
	cols := m.Cols()
	if cols == 0 {
		// trivial: no unknowns and no constants
		return []float64{}, nil
	}
	if m.Rows()+1 < cols {
		// fewer equations than unknowns: can never be unique
		return nil, ErrNoUniqueSolution
	}

	view, err := NewRowView(m)
	if err != nil {
		return nil, opErrorf(opSolve, err)
	}
	order := triangulateUpper(view)
	if order != cols-1 {
		return nil, ErrNoUniqueSolution
	}

	// Back-substitution from the bottom row up:
	// x_k = (−a_{k,n} − Σ_{j>k} a_{kj}·x_j) / a_{kk}
	solution := make([]float64, order)
	for row := order - 1; row >= 0; row-- {
		v, _ := view.At(row, order) // safe: bounds ensured
		value := -v
		for col := row + 1; col < order; col++ {
			a, _ := view.At(row, col) // safe: bounds ensured
			value -= a * solution[col]
		}
		pivot, _ := view.At(row, row) // safe: nonzero by triangulation
		solution[row] = value / pivot
	}

	return solution, nil
}

// triangulateUpper reduces the viewed matrix to upper-triangular form
// using partial pivoting and returns its order: the number of rows
// successfully triangulated.
func triangulateUpper(view *RowView) int {
	cols := view.Cols()
	if cols == 0 {
		return 0
	}
	start := 0
	for col := 0; col < cols-1; col++ {
		if findPivot(view, start, col) {
			eliminateCol(view, start, col)
			start++
		}
	}

	return start
}

// findPivot locates the row at or below start with the largest
// absolute value in col and swaps it into the start position.
// It reports false when no nonzero pivot exists.
func findPivot(view *RowView, start, col int) bool {
	rows := view.Rows()
	if start >= rows {
		return false
	}
	index := start
	value, _ := view.At(start, col) // safe: bounds ensured
	value = math.Abs(value)
	for row := start + 1; row < rows; row++ {
		rv, _ := view.At(row, col) // safe: bounds ensured
		if rv = math.Abs(rv); rv > value {
			index, value = row, rv
		}
	}
	if value == 0 {
		return false
	}
	if index != start {
		_ = view.SwapRows(index, start) // safe: both in range
	}

	return true
}

// eliminateCol zeroes pivotCol below pivotRow by cross-multiplication,
// avoiding a division per row.
func eliminateCol(view *RowView, pivotRow, pivotCol int) {
	pivot, _ := view.At(pivotRow, pivotCol) // safe: bounds ensured
	for row := pivotRow + 1; row < view.Rows(); row++ {
		rv, _ := view.At(row, pivotCol) // safe: bounds ensured
		if rv == 0 {
			continue
		}
		_ = view.Set(row, pivotCol, 0)
		for col := pivotCol + 1; col < view.Cols(); col++ {
			pv, _ := view.At(pivotRow, col) // safe: bounds ensured
			cv, _ := view.At(row, col)      // safe: bounds ensured
			_ = view.Set(row, col, pv*rv-cv*pivot)
		}
	}
}
