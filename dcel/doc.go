// Package dcel implements the doubly connected edge list the sweep
// writes into: append-only arenas of vertices, half-edges and faces,
// addressed by stable dense integer ids. Arena+index dissolves the
// ownership cycles a pointer-based DCEL would have (twin/next/prev
// half-edge references, face↔edge back-references) while keeping O(1)
// access.
//
// A Builder permits partial wiring during construction: half-edges are
// created with unset starts, twins, and ring links, and the pieces are
// filled in as topological events reveal them. Finalize checks that
// every half-edge ended up fully wired and moves the arenas into
// immutable Vertex/HalfEdge/Face records.
//
// Structural invariants (a violated invariant is a programming error
// in the caller and panics — there is no safe partial DCEL to return):
//
//   - Connect requires both half-edges on the same face, an unset next
//     on the first and an unset prev on the second: every half-edge
//     gets next set exactly once and prev set exactly once.
//   - SetStart requires an unset start.
//   - Finalize requires start, prev and next on every half-edge.
package dcel
