package matrix

import "fmt"

// Matrix is a rectangular grid of float64 values with bounds-checked
// element access. Implementations include Dense, the fixed-size Mat2x3
// and Mat3x3, and the mutating views in views.go.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (row, col), or ErrOutOfRange.
	At(row, col int) (float64, error)

	// Set stores v at (row, col), or returns ErrOutOfRange.
	Set(row, col int, v float64) error
}

// opErrorf wraps an underlying error with operation context.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Dense is a row-major matrix backed by a flat slice.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Zero-sized matrices are permitted (Solve accepts the empty system);
// negative dimensions yield ErrBadShape.
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an r×c Dense matrix from values in row-major
// order. len(values) must equal rows*cols.
func NewDenseFrom(rows, cols int, values []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	copy(m.data, values)

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// index computes the flat offset for (row, col) or reports failure.
func (m *Dense) index(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}

	return row*m.c + col, true
}

// At returns the element at (row, col). Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	i, ok := m.index(row, col)
	if !ok {
		return 0, ErrOutOfRange
	}

	return m.data[i], nil
}

// Set stores v at (row, col). Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	i, ok := m.index(row, col)
	if !ok {
		return ErrOutOfRange
	}
	m.data[i] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Mat2x3 is a fixed-size 2×3 matrix value type. Its zero value is the
// zero matrix and is ready for use; the Intersector in package geom
// reuses one Mat2x3 as scratch space across intersection calls.
type Mat2x3 struct {
	v [6]float64
}

// Rows returns 2.
func (m *Mat2x3) Rows() int { return 2 }

// Cols returns 3.
func (m *Mat2x3) Cols() int { return 3 }

// At returns the element at (row, col).
func (m *Mat2x3) At(row, col int) (float64, error) {
	if row < 0 || row >= 2 || col < 0 || col >= 3 {
		return 0, ErrOutOfRange
	}

	return m.v[row*3+col], nil
}

// Set stores v at (row, col).
func (m *Mat2x3) Set(row, col int, v float64) error {
	if row < 0 || row >= 2 || col < 0 || col >= 3 {
		return ErrOutOfRange
	}
	m.v[row*3+col] = v

	return nil
}

// SetAll assigns all six elements in row-major order.
func (m *Mat2x3) SetAll(m00, m01, m02, m10, m11, m12 float64) {
	m.v = [6]float64{m00, m01, m02, m10, m11, m12}
}

// Mat3x3 is a fixed-size 3×3 matrix value type.
type Mat3x3 struct {
	v [9]float64
}

// Rows returns 3.
func (m *Mat3x3) Rows() int { return 3 }

// Cols returns 3.
func (m *Mat3x3) Cols() int { return 3 }

// At returns the element at (row, col).
func (m *Mat3x3) At(row, col int) (float64, error) {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		return 0, ErrOutOfRange
	}

	return m.v[row*3+col], nil
}

// Set stores v at (row, col).
func (m *Mat3x3) Set(row, col int, v float64) error {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		return ErrOutOfRange
	}
	m.v[row*3+col] = v

	return nil
}

// SetAll assigns all nine elements in row-major order.
func (m *Mat3x3) SetAll(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) {
	m.v = [9]float64{m00, m01, m02, m10, m11, m12, m20, m21, m22}
}
