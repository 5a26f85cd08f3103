package matrix

// This file implements the four mutating views over a Matrix. Every
// view is a read-write pass-through: Set calls land in the underlying
// matrix, and mutations of the underlying matrix are visible through
// the view. None of the views copy element data.

// RowView presents a matrix with a permutable row order. It maintains
// a logical→physical row indirection, so SwapRows is O(1) and leaves
// the underlying storage untouched. Solve uses it for partial
// pivoting.
type RowView struct {
	src  Matrix
	perm []int
}

// NewRowView wraps src in an identity-permutation RowView.
func NewRowView(src Matrix) (*RowView, error) {
	if src == nil {
		return nil, ErrNilMatrix
	}
	perm := make([]int, src.Rows())
	for i := range perm {
		perm[i] = i
	}

	return &RowView{src: src, perm: perm}, nil
}

// Rows returns the number of rows.
func (v *RowView) Rows() int { return len(v.perm) }

// Cols returns the number of columns.
func (v *RowView) Cols() int { return v.src.Cols() }

// SwapRows exchanges two logical rows in O(1).
func (v *RowView) SwapRows(first, second int) error {
	if first < 0 || first >= len(v.perm) || second < 0 || second >= len(v.perm) {
		return ErrOutOfRange
	}
	v.perm[first], v.perm[second] = v.perm[second], v.perm[first]

	return nil
}

// At returns the element at the logical (row, col).
func (v *RowView) At(row, col int) (float64, error) {
	if row < 0 || row >= len(v.perm) {
		return 0, ErrOutOfRange
	}

	return v.src.At(v.perm[row], col)
}

// Set stores through to the underlying matrix at the logical (row, col).
func (v *RowView) Set(row, col int, val float64) error {
	if row < 0 || row >= len(v.perm) {
		return ErrOutOfRange
	}

	return v.src.Set(v.perm[row], col, val)
}

// SubView restricts a matrix to an axis-aligned block.
type SubView struct {
	src              Matrix
	firstRow, firstCol int
	rows, cols         int
}

// NewSubView creates a rows×cols window into src starting at
// (firstRow, firstCol). The window must lie entirely inside src.
func NewSubView(src Matrix, firstRow, firstCol, rows, cols int) (*SubView, error) {
	if src == nil {
		return nil, ErrNilMatrix
	}
	if firstRow < 0 || firstCol < 0 || rows < 0 || cols < 0 ||
		firstRow+rows > src.Rows() || firstCol+cols > src.Cols() {
		return nil, ErrBadShape
	}

	return &SubView{src: src, firstRow: firstRow, firstCol: firstCol, rows: rows, cols: cols}, nil
}

// Rows returns the window height.
func (v *SubView) Rows() int { return v.rows }

// Cols returns the window width.
func (v *SubView) Cols() int { return v.cols }

// At returns the element at (row, col) within the window.
func (v *SubView) At(row, col int) (float64, error) {
	if row < 0 || row >= v.rows || col < 0 || col >= v.cols {
		return 0, ErrOutOfRange
	}

	return v.src.At(v.firstRow+row, v.firstCol+col)
}

// Set stores through to the underlying matrix within the window.
func (v *SubView) Set(row, col int, val float64) error {
	if row < 0 || row >= v.rows || col < 0 || col >= v.cols {
		return ErrOutOfRange
	}

	return v.src.Set(v.firstRow+row, v.firstCol+col, val)
}

// TransposedView swaps the roles of row and column indices.
type TransposedView struct {
	src Matrix
}

// NewTransposedView wraps src so that At(i, j) reads src at (j, i).
func NewTransposedView(src Matrix) (*TransposedView, error) {
	if src == nil {
		return nil, ErrNilMatrix
	}

	return &TransposedView{src: src}, nil
}

// Rows returns the number of columns of the underlying matrix.
func (v *TransposedView) Rows() int { return v.src.Cols() }

// Cols returns the number of rows of the underlying matrix.
func (v *TransposedView) Cols() int { return v.src.Rows() }

// At returns the transposed element.
func (v *TransposedView) At(row, col int) (float64, error) {
	return v.src.At(col, row)
}

// Set stores the transposed element.
func (v *TransposedView) Set(row, col int, val float64) error {
	return v.src.Set(col, row, val)
}

// MinorView removes one chosen row and one chosen column from a
// matrix, exposing the (r−1)×(c−1) minor.
type MinorView struct {
	src      Matrix
	row, col int
}

// NewMinorView creates the minor of src with the given row and column
// removed.
func NewMinorView(src Matrix, row, col int) (*MinorView, error) {
	if src == nil {
		return nil, ErrNilMatrix
	}
	if row < 0 || row >= src.Rows() || col < 0 || col >= src.Cols() {
		return nil, ErrBadShape
	}

	return &MinorView{src: src, row: row, col: col}, nil
}

// Rows returns src.Rows() − 1.
func (v *MinorView) Rows() int { return v.src.Rows() - 1 }

// Cols returns src.Cols() − 1.
func (v *MinorView) Cols() int { return v.src.Cols() - 1 }

// translate maps minor coordinates to source coordinates, skipping the
// removed row and column.
func (v *MinorView) translate(row, col int) (int, int, bool) {
	if row < 0 || row >= v.Rows() || col < 0 || col >= v.Cols() {
		return 0, 0, false
	}
	if row >= v.row {
		row++
	}
	if col >= v.col {
		col++
	}

	return row, col, true
}

// At returns the element at (row, col) of the minor.
func (v *MinorView) At(row, col int) (float64, error) {
	r, c, ok := v.translate(row, col)
	if !ok {
		return 0, ErrOutOfRange
	}

	return v.src.At(r, c)
}

// Set stores through to the underlying matrix at the minor (row, col).
func (v *MinorView) Set(row, col int, val float64) error {
	r, c, ok := v.translate(row, col)
	if !ok {
		return ErrOutOfRange
	}

	return v.src.Set(r, c, val)
}
