package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fortune/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from row-major values or fails the test.
func mustDense(t *testing.T, rows, cols int, values []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, values)
	require.NoError(t, err)

	return m
}

// TestRowViewPassThrough verifies the identity permutation reads and
// writes the underlying matrix.
func TestRowViewPassThrough(t *testing.T) {
	m := mustDense(t, 2, 3, []float64{1, 0, 0, 0, 0, 0})

	view, err := matrix.NewRowView(m)
	require.NoError(t, err)
	require.Equal(t, 2, view.Rows())
	require.Equal(t, 3, view.Cols())

	v, err := view.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	// a Set through the view lands in the source
	require.NoError(t, view.Set(1, 2, 9))
	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)
}

// TestRowViewSwap verifies SwapRows permutes logical rows without
// touching physical storage.
func TestRowViewSwap(t *testing.T) {
	m := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	view, err := matrix.NewRowView(m)
	require.NoError(t, err)
	require.NoError(t, view.SwapRows(0, 1))

	v, err := view.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
	v, err = view.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	// physical storage is untouched
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	require.ErrorIs(t, view.SwapRows(0, 2), matrix.ErrOutOfRange)
}

// TestSubView verifies the window restriction and write-through.
func TestSubView(t *testing.T) {
	m := mustDense(t, 3, 4, []float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	})

	view, err := matrix.NewSubView(m, 1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, view.Rows())
	require.Equal(t, 2, view.Cols())

	v, err := view.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
	v, err = view.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 10.0, v)

	require.NoError(t, view.Set(0, 1, -1))
	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, -1.0, v)

	_, err = view.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.NewSubView(m, 2, 3, 2, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestTransposedView verifies index swapping in both directions.
func TestTransposedView(t *testing.T) {
	m := mustDense(t, 2, 3, []float64{0, 1, 2, 3, 4, 5})

	view, err := matrix.NewTransposedView(m)
	require.NoError(t, err)
	require.Equal(t, 3, view.Rows())
	require.Equal(t, 2, view.Cols())

	v, err := view.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	require.NoError(t, view.Set(0, 1, 7))
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

// TestMinorView verifies that exactly one row and one column vanish.
func TestMinorView(t *testing.T) {
	m := mustDense(t, 3, 3, []float64{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
	})

	view, err := matrix.NewMinorView(m, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 2, view.Rows())
	require.Equal(t, 2, view.Cols())

	expect := [][]float64{{1, 2}, {7, 8}}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			v, err := view.At(r, c)
			require.NoError(t, err)
			require.Equal(t, expect[r][c], v)
		}
	}

	require.NoError(t, view.Set(1, 1, -8))
	v, err := m.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, -8.0, v)

	_, err = matrix.NewMinorView(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
