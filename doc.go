// Package fortune generates 2D Voronoi diagrams with Fortune's
// sweepline algorithm.
//
// 🚀 What is fortune?
//
//	A pure-Go library that turns a set of point sites inside an
//	axis-aligned rectangle into a planar subdivision, represented as a
//	doubly connected edge list (DCEL):
//
//	  • Sweepline core: beachline tree of parabolic arcs, priority
//	    queue of site and circle events, lazy event invalidation
//	  • DCEL store: arena-allocated vertices, twinned half-edges and
//	    faces with O(1) id-based access
//	  • Clipping: unbounded edges are extended to the bounding
//	    rectangle and open faces are closed along its border
//
// ✨ Why choose fortune?
//
//   - Deterministic          — a fixed site list always yields the same diagram
//   - Value-oriented         — Build returns an immutable Diagram, safe to share
//   - Render-ready           — CreateTriangles emits fan-triangulated GPU buffers
//   - Pure Go                — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under five subpackages:
//
//	matrix/    — dense matrices, mutating views, Gaussian elimination
//	quadratic/ — quadratic root solver with an explicit solution sum type
//	geom/      — vectors, intersections, circumcircle, parabola predicates
//	dcel/      — the doubly connected edge list arena and its builder
//	voronoi/   — the sweepline driver: Builder, Diagram, triangulation
//
// Quick example:
//
//	b, _ := voronoi.NewBuilder(1000, 1000)
//	_ = b.AddSite(100, 100)
//	_ = b.AddSite(900, 900)
//	d := b.Build()
//	_ = d.Display(os.Stdout)
//
// See voronoi/example_test.go for complete runnable examples.
package fortune
