// Package dcel_test verifies the construction invariants of the DCEL
// builder: twin linkage, single-shot ring wiring, and finalization.
package dcel_test

import (
	"testing"

	"github.com/katalvlaran/fortune/dcel"
	"github.com/stretchr/testify/require"
)

// TestCreateHalfEdgePair verifies mutual twin linkage and face
// assignment.
func TestCreateHalfEdgePair(t *testing.T) {
	b := dcel.NewBuilder()
	fa := b.AddFace(1, 2)
	fb := b.AddFace(3, 4)

	first, twin := b.CreateHalfEdgePair(fa, fb)
	require.Equal(t, twin, b.TwinID(first))
	require.Equal(t, first, b.TwinID(twin))
	require.Equal(t, fa, b.FaceID(first))
	require.Equal(t, fb, b.FaceID(twin))
	require.Equal(t, dcel.None, b.Start(first))
}

// TestConnectChecksFaces verifies half-edges of different faces cannot
// be ring-linked.
func TestConnectChecksFaces(t *testing.T) {
	b := dcel.NewBuilder()
	fa := b.AddFace(0, 0)
	fb := b.AddFace(1, 1)
	e1 := b.CreateHalfEdge(fa, dcel.None)
	e2 := b.CreateHalfEdge(fb, dcel.None)

	require.Panics(t, func() { b.Connect(e1, e2) })
}

// TestConnectIsSingleShot verifies next and prev are each set exactly
// once.
func TestConnectIsSingleShot(t *testing.T) {
	b := dcel.NewBuilder()
	f := b.AddFace(0, 0)
	e1 := b.CreateHalfEdge(f, dcel.None)
	e2 := b.CreateHalfEdge(f, dcel.None)
	e3 := b.CreateHalfEdge(f, dcel.None)

	b.Connect(e1, e2)
	require.Panics(t, func() { b.Connect(e1, e3) }) // e1 already has next
	require.Panics(t, func() { b.Connect(e3, e2) }) // e2 already has prev
}

// TestSetStartIsSingleShot verifies a start vertex cannot be
// reassigned.
func TestSetStartIsSingleShot(t *testing.T) {
	b := dcel.NewBuilder()
	f := b.AddFace(0, 0)
	e := b.CreateHalfEdge(f, dcel.None)
	v := b.CreateVertex(5, 6)

	b.SetStart(e, v)
	require.Equal(t, v, b.Start(e))
	require.Panics(t, func() { b.SetStart(e, v) })
}

// TestFinalize verifies a fully wired triangle survives finalization
// with all references intact.
func TestFinalize(t *testing.T) {
	b := dcel.NewBuilder()
	f := b.AddFace(1, 1)
	v0 := b.CreateVertex(0, 0)
	v1 := b.CreateVertex(1, 0)
	v2 := b.CreateVertex(0, 1)
	e0 := b.CreateHalfEdge(f, v0)
	e1 := b.CreateHalfEdge(f, v1)
	e2 := b.CreateHalfEdge(f, v2)
	b.Connect(e0, e1)
	b.Connect(e1, e2)
	b.Connect(e2, e0)
	b.NoteFaceEdge(f, e0)

	vertices, halfEdges, faces := b.Finalize()
	require.Len(t, vertices, 3)
	require.Len(t, halfEdges, 3)
	require.Len(t, faces, 1)
	require.Equal(t, e0, faces[0].StartID)
	require.Equal(t, e1, halfEdges[e0].NextID)
	require.Equal(t, e0, halfEdges[e1].PrevID)
	require.Equal(t, dcel.None, halfEdges[e0].TwinID)
	for _, he := range halfEdges {
		require.Equal(t, f, he.FaceID)
	}
}

// TestFinalizeRejectsPartialWiring verifies a dangling half-edge is a
// fatal construction bug.
func TestFinalizeRejectsPartialWiring(t *testing.T) {
	b := dcel.NewBuilder()
	f := b.AddFace(1, 1)
	v := b.CreateVertex(0, 0)
	b.CreateHalfEdge(f, v) // never connected

	require.Panics(t, func() { b.Finalize() })
}

// TestNoteFaceEdgeKeepsFirst verifies only the first ring entry
// sticks.
func TestNoteFaceEdgeKeepsFirst(t *testing.T) {
	b := dcel.NewBuilder()
	f := b.AddFace(0, 0)
	v := b.CreateVertex(0, 0)
	e0 := b.CreateHalfEdge(f, v)
	e1 := b.CreateHalfEdge(f, v)
	b.NoteFaceEdge(f, e0)
	b.NoteFaceEdge(f, e1)
	b.Connect(e0, e1)
	b.Connect(e1, e0)

	_, _, faces := b.Finalize()
	require.Equal(t, e0, faces[0].StartID)
}
