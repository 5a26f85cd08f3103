package voronoi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fortune/dcel"
	"github.com/katalvlaran/fortune/geom"
)

// boundEps is the snapping tolerance for clipped endpoints: the border
// walk compares coordinates against 0, width and height exactly, so
// ray intersections are pulled onto the rectangle first.
const boundEps = 1e-9

// completeEdges traverses the beachline breakpoints left to right at
// sweep end. Every surviving breakpoint owns a half-edge pair with at
// least one endpoint still open toward the remaining sweep direction;
// each gets its open endpoint computed against the bounding rectangle,
// and the two adjacent faces record the pair as their open boundary.
func (b *Builder) completeEdges() {
	bounds := geom.NewRect(0, b.width, 0, b.height)

	edgeID, ok := b.findFirstEdgeID()
	for ok {
		b.completeEdge(bounds, edgeID)
		edgeID, ok = b.findNextEdgeID(b.findNextArcID(edgeID))
	}
}

// completeEdge clips one breakpoint's half-edge and records, per face,
// which half-edge is its boundary end (incoming from the border walk)
// and which is its boundary start (outgoing along the walk).
func (b *Builder) completeEdge(bounds geom.Rect, edgeID int) {
	halfEdgeID := b.edges[edgeID].halfEdgeID
	faceID := b.store.FaceID(halfEdgeID)
	twinID := b.store.TwinID(halfEdgeID)
	if twinID == dcel.None {
		panic(fmt.Sprintf("voronoi: breakpoint %d tracks an untwinned half-edge", edgeID))
	}
	twinFaceID := b.store.FaceID(twinID)
	if b.store.Start(halfEdgeID) == dcel.None {
		b.store.SetStart(halfEdgeID, b.computeOpenStart(bounds, faceID, twinFaceID))
	}
	b.store.SetOpenEnd(faceID, halfEdgeID)
	b.store.SetOpenStart(twinFaceID, twinID)
}

// computeOpenStart finds the open endpoint of the half-edge between
// two faces: cast a ray from the midpoint of the sites along the
// perpendicular of their difference, oriented clockwise of it (toward
// the unswept side), and clip it against the rectangle. The hit is
// snapped onto the rectangle before becoming a vertex.
func (b *Builder) computeOpenStart(bounds geom.Rect, faceID, twinFaceID int) int {
	fx, fy := b.store.FaceSite(faceID)
	tx, ty := b.store.FaceSite(twinFaceID)
	site, twinSite := geom.V2(fx, fy), geom.V2(tx, ty)
	pos := geom.Midpoint(site, twinSite)
	sub := twinSite.Sub(site)
	dir := geom.V2(site.Y-twinSite.Y, twinSite.X-site.X)
	if !geom.IsClockwise(sub, dir) {
		dir = dir.Neg()
	}
	hit, ok := b.sect.RayRect(pos, dir, bounds)
	if !ok {
		panic("voronoi: open edge ray must hit the bounding rectangle")
	}

	return b.store.CreateVertex(snap(hit.X, b.width), snap(hit.Y, b.height))
}

// snap pulls v onto 0 or extent when within boundEps.
func snap(v, extent float64) float64 {
	if math.Abs(v) <= boundEps {
		return 0
	}
	if math.Abs(v-extent) <= boundEps {
		return extent
	}

	return v
}

// bound closes the diagram against the bounding rectangle. Three
// cases: an empty beachline means an empty diagram; a single arc means
// one face covering the whole rectangle, fenced by four untwinned
// half-edges; otherwise every face left with open bounds is closed by
// walking the border.
func (b *Builder) bound() {
	switch b.root.kind {
	case nodeNone:
		// no sites, nothing to fence

	case nodeArc:
		faceID := b.arcs[b.root.id].faceID
		topLeft := b.store.CreateVertex(0, 0)
		topRight := b.store.CreateVertex(b.width, 0)
		bottomRight := b.store.CreateVertex(b.width, b.height)
		bottomLeft := b.store.CreateVertex(0, b.height)
		top := b.store.CreateHalfEdge(faceID, topLeft)
		right := b.store.CreateHalfEdge(faceID, topRight)
		bottom := b.store.CreateHalfEdge(faceID, bottomRight)
		left := b.store.CreateHalfEdge(faceID, bottomLeft)
		b.store.Connect(top, right)
		b.store.Connect(right, bottom)
		b.store.Connect(bottom, left)
		b.store.Connect(left, top)
		b.store.NoteFaceEdge(faceID, top)

	case nodeEdge:
		for faceID := 0; faceID < b.store.FaceCount(); faceID++ {
			if b.store.HasOpenBounds(faceID) {
				b.closeFaceBounds(faceID)
			}
		}
	}
}

// closeFaceBounds walks the rectangle border clockwise from the vertex
// where the face's boundary leaves the interior back to the vertex
// where it re-enters, emitting one border half-edge per side crossed.
// The walk direction per side: along the top (y = 0) toward
// (width, 0), along the right (x = width) toward (width, height),
// along the bottom (y = height) toward (0, height), and along the left
// (x = 0) toward (0, 0). On each side the walk stops as soon as the
// side contains the target vertex in the walk direction.
func (b *Builder) closeFaceBounds(faceID int) {
	curEdge := b.store.OpenStart(faceID)
	endEdge := b.store.OpenEnd(faceID)
	if curEdge == dcel.None || endEdge == dcel.None {
		panic(fmt.Sprintf("voronoi: face %d has partial open bounds", faceID))
	}
	curVertex := b.store.Start(b.store.TwinID(curEdge))
	curX, curY := b.store.VertexPosition(curVertex)
	endX, endY := b.store.VertexPosition(b.store.Start(endEdge))

walk:
	for {
		var nextX, nextY float64
		switch {
		case curY == 0 && curX != b.width:
			if endY == 0 && endX >= curX {
				break walk
			}
			nextX, nextY = b.width, 0
		case curX == b.width && curY != b.height:
			if endX == b.width && endY >= curY {
				break walk
			}
			nextX, nextY = b.width, b.height
		case curY == b.height && curX != 0:
			if endY == b.height && endX <= curX {
				break walk
			}
			nextX, nextY = 0, b.height
		case curX == 0 && curY != 0:
			if endX == 0 && endY <= curY {
				break walk
			}
			nextX, nextY = 0, 0
		default:
			panic(fmt.Sprintf("voronoi: boundary vertex (%v, %v) is not on the bounding rectangle", curX, curY))
		}
		next := b.store.CreateHalfEdge(faceID, curVertex)
		b.store.Connect(curEdge, next)
		curVertex = b.store.CreateVertex(nextX, nextY)
		curEdge = next
		curX, curY = nextX, nextY
	}

	last := b.store.CreateHalfEdge(faceID, curVertex)
	b.store.Connect(curEdge, last)
	b.store.Connect(last, endEdge)
	b.store.SetOpenStart(faceID, dcel.None)
	b.store.SetOpenEnd(faceID, dcel.None)
}
