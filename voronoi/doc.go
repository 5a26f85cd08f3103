// Package voronoi computes 2D Voronoi diagrams with Fortune's
// sweepline algorithm.
//
// A horizontal sweepline descends from high y toward low y across a
// set of point sites strictly inside an axis-aligned rectangle. The
// beachline — the lower envelope of the parabolas equidistant from
// each crossed site and the sweepline — is kept as a binary tree whose
// in-order leaves are the arcs and whose internal nodes are the
// breakpoints between adjacent arcs. A max-priority queue drives the
// sweep:
//
//   - Site events (priority: the site's y) insert an arc, splitting
//     the arc vertically above the new site and creating a twinned
//     half-edge pair for the separating Voronoi edge.
//   - Circle events (priority: circumcircle bottom c.y − r) remove the
//     middle arc of a converging triple, create the Voronoi vertex at
//     the circumcenter and wire the three-edges-meet pattern.
//
// Stale circle events are invalidated lazily: each arc remembers the
// id of its currently pending event, and a popped event whose id no
// longer matches is discarded without side effects.
//
// When the queue drains, every breakpoint still in the tree owns a
// half-edge with an open endpoint. The clipper extends each of them to
// the bounding rectangle, then walks the rectangle border clockwise to
// close every face that touches it.
//
// Builder is single-threaded and synchronous. The Diagram returned by
// Build is immutable and may be shared freely by read-only consumers.
// With a fixed site list the output is deterministic: events are
// totally ordered by priority with the event id as tiebreak.
//
// Errors (sentinel):
//
//	– ErrBadDimensions   non-positive rectangle width or height
//	– ErrSiteOutOfBounds site not strictly inside the rectangle
//	– ErrDuplicateSite   a site at the same point was already added
//	– ErrDuplicateSiteY  a site with the same y was already added
//
// Violated DCEL or beachline invariants during Build are programming
// errors and panic: there is no safe partial diagram to return.
package voronoi
