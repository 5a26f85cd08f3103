// Package geom provides the 2D geometric predicates the sweepline
// consumes: vectors, an axis-aligned bounding rectangle, intersection
// primitives (line/line, ray/ray, ray/segment, ray/rectangle), the
// circumcircle of three points, and the intersection of two parabolas
// defined by foci and a shared horizontal directrix.
//
// All coordinates are double precision. The intersection primitives
// reduce to the 2×3 parameter system
//
//	P1 + k·D1 = P2 + j·D2
//
// solved with matrix.Solve; an Intersector reuses a single Mat2x3
// scratch buffer across calls, so no query allocates a matrix (the
// solver still allocates its small working slices). Expected local failures (parallel lines, colinear
// points, a miss) are reported as ok-booleans or as the
// ParabolaIntersection kind, never as errors.
package geom
