package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opScale = "Scale"
	opDiv   = "Div"
	opMul   = "Mul"
	opDet   = "Det"
	opSolve = "Solve"
)

// validatePair checks both operands for nil and identical shapes.
func validatePair(op string, a, b Matrix) error {
	if a == nil || b == nil {
		return opErrorf(op, ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return opErrorf(op, ErrDimensionMismatch)
	}

	return nil
}

// Add returns a new Dense containing the element-wise sum a + b.
// Contract: non-nil operands with identical shapes.
// Complexity: O(r·c).
func Add(a, b Matrix) (*Dense, error) {
	if err := validatePair(opAdd, a, b); err != nil {
		return nil, err
	}
	res, _ := NewDense(a.Rows(), a.Cols())
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			av, _ := a.At(i, j) // safe: bounds ensured
			bv, _ := b.At(i, j) // safe: same shape
			res.data[i*res.c+j] = av + bv
		}
	}

	return res, nil
}

// Sub returns a new Dense containing the element-wise difference a − b.
// Contract: non-nil operands with identical shapes.
// Complexity: O(r·c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := validatePair(opSub, a, b); err != nil {
		return nil, err
	}
	res, _ := NewDense(a.Rows(), a.Cols())
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			av, _ := a.At(i, j) // safe: bounds ensured
			bv, _ := b.At(i, j) // safe: same shape
			res.data[i*res.c+j] = av - bv
		}
	}

	return res, nil
}

// Scale returns a new Dense with every element of a multiplied by s.
// Complexity: O(r·c).
func Scale(a Matrix, s float64) (*Dense, error) {
	if a == nil {
		return nil, opErrorf(opScale, ErrNilMatrix)
	}
	res, _ := NewDense(a.Rows(), a.Cols())
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			av, _ := a.At(i, j) // safe: bounds ensured
			res.data[i*res.c+j] = av * s
		}
	}

	return res, nil
}

// Div returns a new Dense with every element of a divided by s.
// Division by zero follows IEEE-754 semantics.
// Complexity: O(r·c).
func Div(a Matrix, s float64) (*Dense, error) {
	if a == nil {
		return nil, opErrorf(opDiv, ErrNilMatrix)
	}
	res, _ := NewDense(a.Rows(), a.Cols())
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			av, _ := a.At(i, j) // safe: bounds ensured
			res.data[i*res.c+j] = av / s
		}
	}

	return res, nil
}

// Mul returns the matrix product a·b as a new Dense.
// Contract: a.Cols() == b.Rows().
// Complexity: O(r·n·c).
func Mul(a, b Matrix) (*Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opMul, ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return nil, opErrorf(opMul, ErrDimensionMismatch)
	}
	res, _ := NewDense(a.Rows(), b.Cols())
	inner := a.Cols()
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			var sum float64
			for n := 0; n < inner; n++ {
				av, _ := a.At(i, n) // safe: bounds ensured
				bv, _ := b.At(n, j) // safe: bounds ensured
				sum += av * bv
			}
			res.data[i*res.c+j] = sum
		}
	}

	return res, nil
}

// Det returns the determinant of a square matrix of order 1 or 2.
// Larger orders are not needed by the geometry kernel and yield
// ErrBadShape; non-square input yields ErrNonSquare.
func Det(a Matrix) (float64, error) {
	if a == nil {
		return 0, opErrorf(opDet, ErrNilMatrix)
	}
	if a.Rows() != a.Cols() {
		return 0, opErrorf(opDet, ErrNonSquare)
	}
	switch a.Rows() {
	case 1:
		v, _ := a.At(0, 0)

		return v, nil
	case 2:
		m00, _ := a.At(0, 0)
		m01, _ := a.At(0, 1)
		m10, _ := a.At(1, 0)
		m11, _ := a.At(1, 1)

		return m00*m11 - m01*m10, nil
	default:
		return 0, opErrorf(opDet, ErrBadShape)
	}
}
