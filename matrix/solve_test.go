package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fortune/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// threeEquationSystem is the canonical-form encoding of
//
//	 2x − 3y +  z +  0 = 0
//	 −x + 6y + 2z − 26 = 0
//	 −x −  y −  z + 10 = 0
//
// with the solution (2, 3, 5).
var threeEquationSystem = []float64{
	2, -3, 1, 0,
	-1, 6, 2, -26,
	-1, -1, -1, 10,
}

// TestSolveEmptySystem verifies the zero-column system yields the
// empty vector.
func TestSolveEmptySystem(t *testing.T) {
	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)

	solution, err := matrix.Solve(m)
	require.NoError(t, err)
	require.Empty(t, solution)
}

// TestSolveTooFewRows verifies an under-determined system fails before
// elimination.
func TestSolveTooFewRows(t *testing.T) {
	m, err := matrix.NewDense(2, 4)
	require.NoError(t, err)

	_, err = matrix.Solve(m)
	require.ErrorIs(t, err, matrix.ErrNoUniqueSolution)
}

// TestSolveSystem solves the three-equation reference system.
func TestSolveSystem(t *testing.T) {
	m := mustDense(t, 3, 4, threeEquationSystem)

	solution, err := matrix.Solve(m)
	require.NoError(t, err)
	require.Len(t, solution, 3)
	require.InDelta(t, 2, solution[0], 1e-12)
	require.InDelta(t, 3, solution[1], 1e-12)
	require.InDelta(t, 5, solution[2], 1e-12)
}

// TestSolvePermutedSystem verifies the solution is invariant under a
// row permutation of the input.
func TestSolvePermutedSystem(t *testing.T) {
	m := mustDense(t, 3, 4, []float64{
		-1, -1, -1, 10,
		-1, 6, 2, -26,
		2, -3, 1, 0,
	})

	solution, err := matrix.Solve(m)
	require.NoError(t, err)
	require.InDelta(t, 2, solution[0], 1e-12)
	require.InDelta(t, 3, solution[1], 1e-12)
	require.InDelta(t, 5, solution[2], 1e-12)
}

// TestSolveNoUniqueSolution verifies a singular system is rejected.
// The third equation is the sum of scaled copies of the first two, so
// the system has a one-dimensional solution space.
func TestSolveNoUniqueSolution(t *testing.T) {
	m := mustDense(t, 3, 4, []float64{
		-1, -1, -1, 10,
		-1, 6, 2, -26,
		-3, 4, 0, -6,
	})

	_, err := matrix.Solve(m)
	require.ErrorIs(t, err, matrix.ErrNoUniqueSolution)
}

// TestSolveMatchesGonum cross-checks the solver against gonum on the
// reference system: a·x + c = 0 rearranged to a·x = −c.
func TestSolveMatchesGonum(t *testing.T) {
	m := mustDense(t, 3, 4, threeEquationSystem)
	solution, err := matrix.Solve(m)
	require.NoError(t, err)

	a := mat.NewDense(3, 3, []float64{
		2, -3, 1,
		-1, 6, 2,
		-1, -1, -1,
	})
	rhs := mat.NewVecDense(3, []float64{0, 26, -10})
	var x mat.VecDense
	require.NoError(t, x.SolveVec(a, rhs))

	for i := 0; i < 3; i++ {
		require.InDelta(t, x.AtVec(i), solution[i], 1e-9)
	}
}
