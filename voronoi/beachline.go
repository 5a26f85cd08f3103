package voronoi

import (
	"fmt"

	"github.com/katalvlaran/fortune/geom"
)

// none marks an absent arc, breakpoint or event reference.
const none = -1

// nodeKind tags a beachline tree reference.
type nodeKind int

const (
	nodeNone nodeKind = iota
	nodeArc
	nodeEdge
)

// nodeRef is a tagged reference to a beachline node: either an arc
// leaf or a breakpoint internal node.
type nodeRef struct {
	kind nodeKind
	id   int
}

func arcRef(id int) nodeRef  { return nodeRef{kind: nodeArc, id: id} }
func edgeRef(id int) nodeRef { return nodeRef{kind: nodeEdge, id: id} }

// arc is a beachline leaf: a parabolic arc whose focus is the site of
// faceID. pendingEvent holds the id of the arc's currently valid
// circle event, or none; a popped circle event with a different id is
// stale and ignored.
type arc struct {
	faceID       int
	parent       int // breakpoint id, or none at the root
	pendingEvent int
}

// breakpoint is a beachline internal node: the moving intersection of
// the two arcs adjacent to it. As the sweep advances the breakpoint
// traces out halfEdgeID — always the half-edge bounding the face of
// its in-order predecessor arc — and writes its endpoints when it is
// destroyed at a circle event or clipped at sweep end.
type breakpoint struct {
	halfEdgeID  int
	parent      int // breakpoint id, or none at the root
	left, right nodeRef
}

// createArc appends a beachline arc for faceID and returns its id.
func (b *Builder) createArc(faceID int) int {
	id := len(b.arcs)
	b.arcs = append(b.arcs, arc{faceID: faceID, parent: none, pendingEvent: none})

	return id
}

// createEdge appends a breakpoint tracking halfEdgeID with the given
// children and returns its id. Parent links of the children are the
// caller's responsibility.
func (b *Builder) createEdge(halfEdgeID int, left, right nodeRef) int {
	id := len(b.edges)
	b.edges = append(b.edges, breakpoint{
		halfEdgeID: halfEdgeID,
		parent:     none,
		left:       left,
		right:      right,
	})

	return id
}

// findPrevArcID returns the arc immediately left of a breakpoint:
// descend into the left subtree, then always right.
func (b *Builder) findPrevArcID(edgeID int) int {
	node := b.edges[edgeID].left
	for node.kind == nodeEdge {
		node = b.edges[node.id].right
	}

	return node.id
}

// findNextArcID returns the arc immediately right of a breakpoint:
// descend into the right subtree, then always left.
func (b *Builder) findNextArcID(edgeID int) int {
	node := b.edges[edgeID].right
	for node.kind == nodeEdge {
		node = b.edges[node.id].left
	}

	return node.id
}

// findFirstEdgeID returns the leftmost breakpoint of the beachline:
// from the root, descend left while the node is a breakpoint.
func (b *Builder) findFirstEdgeID() (int, bool) {
	if b.root.kind != nodeEdge {
		return 0, false
	}
	id := b.root.id
	for child := b.edges[id].left; child.kind == nodeEdge; child = b.edges[child.id].left {
		id = child.id
	}

	return id, true
}

// findPrevEdgeID returns the breakpoint immediately left of an arc:
// the first ancestor holding the arc in its right subtree. A missing
// result means the arc is the leftmost one.
func (b *Builder) findPrevEdgeID(arcID int) (int, bool) {
	parent := b.arcs[arcID].parent
	if parent == none {
		return 0, false
	}
	if b.edges[parent].right == arcRef(arcID) {
		return parent, true
	}
	child := parent
	for {
		parent = b.edges[child].parent
		if parent == none {
			return 0, false
		}
		if b.edges[parent].right == edgeRef(child) {
			return parent, true
		}
		child = parent
	}
}

// findNextEdgeID returns the breakpoint immediately right of an arc:
// the first ancestor holding the arc in its left subtree. A missing
// result means the arc is the rightmost one.
func (b *Builder) findNextEdgeID(arcID int) (int, bool) {
	parent := b.arcs[arcID].parent
	if parent == none {
		return 0, false
	}
	if b.edges[parent].left == arcRef(arcID) {
		return parent, true
	}
	child := parent
	for {
		parent = b.edges[child].parent
		if parent == none {
			return 0, false
		}
		if b.edges[parent].left == edgeRef(child) {
			return parent, true
		}
		child = parent
	}
}

// arcFocus returns the focus of an arc: the site of its face.
func (b *Builder) arcFocus(arcID int) geom.Vec2 {
	x, y := b.store.FaceSite(b.arcs[arcID].faceID)

	return geom.V2(x, y)
}

// findSplitArcID locates the arc vertically above the new site at
// (site.X, site.Y). At each breakpoint the two adjacent parabolas —
// defined by the neighbor arcs' foci and the directrix through the new
// site — intersect twice; the breakpoint corresponds to the left
// intersection when its left focus is the higher one (the lower focus
// owns the middle of the envelope), and to the right intersection
// otherwise. Descend left or right by comparing the site's x against
// that intersection.
func (b *Builder) findSplitArcID(site geom.Vec2) int {
	node := b.root
	for node.kind == nodeEdge {
		e := node.id
		leftFocus := b.arcFocus(b.findPrevArcID(e))
		rightFocus := b.arcFocus(b.findNextArcID(e))
		sect := geom.IntersectParabolas(leftFocus, rightFocus, site.Y)
		if sect.Kind != geom.ParabolaTwo {
			panic(fmt.Sprintf("voronoi: expected two parabola intersections at breakpoint %d, got kind %d", e, sect.Kind))
		}
		ix := sect.P2.X
		if leftFocus.Y > rightFocus.Y {
			ix = sect.P1.X
		}
		if site.X < ix {
			node = b.edges[e].left
		} else {
			node = b.edges[e].right
		}
	}

	return node.id
}

// replaceChild swaps oldChild for newChild under parentEdgeID and
// fixes the new child's parent back-link.
func (b *Builder) replaceChild(parentEdgeID int, oldChild, newChild nodeRef) {
	switch newChild.kind {
	case nodeArc:
		b.arcs[newChild.id].parent = parentEdgeID
	case nodeEdge:
		b.edges[newChild.id].parent = parentEdgeID
	}
	parent := &b.edges[parentEdgeID]
	switch oldChild {
	case parent.left:
		parent.left = newChild
	case parent.right:
		parent.right = newChild
	default:
		panic(fmt.Sprintf("voronoi: node is not a child of breakpoint %d", parentEdgeID))
	}
}

// addArc handles a site event: insert the arc of faceID into the
// beachline. The split arc A is replaced by the subtree
//
//	leftEdge(A, rightEdge(new, clone))
//
// where leftEdge tracks the half-edge of A's face (the twin) and
// rightEdge tracks the half-edge of the new face. Circle events of the
// two outer survivors are recomputed at the new site's height.
func (b *Builder) addArc(faceID int) {
	if b.root.kind == nodeNone {
		b.root = arcRef(b.createArc(faceID))

		return
	}

	sx, sy := b.store.FaceSite(faceID)
	splitArcID := b.findSplitArcID(geom.V2(sx, sy))
	splitFaceID := b.arcs[splitArcID].faceID

	halfEdgeID, twinID := b.store.CreateHalfEdgePair(faceID, splitFaceID)
	b.store.NoteFaceEdge(faceID, halfEdgeID)
	b.store.NoteFaceEdge(splitFaceID, twinID)

	parent := b.arcs[splitArcID].parent
	newArcID := b.createArc(faceID)
	cloneArcID := b.createArc(splitFaceID)
	rightEdgeID := b.createEdge(halfEdgeID, arcRef(newArcID), arcRef(cloneArcID))
	b.arcs[newArcID].parent = rightEdgeID
	b.arcs[cloneArcID].parent = rightEdgeID
	leftEdgeID := b.createEdge(twinID, arcRef(splitArcID), edgeRef(rightEdgeID))
	b.arcs[splitArcID].parent = leftEdgeID
	b.edges[rightEdgeID].parent = leftEdgeID
	if parent == none {
		b.root = edgeRef(leftEdgeID)
	} else {
		b.replaceChild(parent, arcRef(splitArcID), edgeRef(leftEdgeID))
	}

	b.updateRemoveEvent(splitArcID, sy)
	b.updateRemoveEvent(cloneArcID, sy)
}

// removeArc handles a valid circle event: collapse arcID between its
// two breakpoints, which have converged on the circumcenter of the
// three involved foci. The vertex is created there, the two tracked
// half-edges receive it as an endpoint, a new half-edge pair is sent
// down between the surviving neighbor faces, and the rings of the
// three faces meeting at the vertex are stitched. The breakpoint whose
// child the arc was disappears (replaced by the arc's sibling
// subtree); the other breakpoint survives and takes over the new
// down-going half-edge. sweepY is the event's priority.
func (b *Builder) removeArc(arcID int, sweepY float64) {
	leftEdgeID, okL := b.findPrevEdgeID(arcID)
	rightEdgeID, okR := b.findNextEdgeID(arcID)
	if !okL || !okR {
		panic(fmt.Sprintf("voronoi: removing arc %d without two neighbors", arcID))
	}
	leftArcID := b.findPrevArcID(leftEdgeID)
	rightArcID := b.findNextArcID(rightEdgeID)
	leftFaceID := b.arcs[leftArcID].faceID
	rightFaceID := b.arcs[rightArcID].faceID

	center, _, ok := b.sect.CircleThrough(
		b.arcFocus(leftArcID), b.arcFocus(arcID), b.arcFocus(rightArcID))
	if !ok {
		panic(fmt.Sprintf("voronoi: no circumcircle for converging arc %d", arcID))
	}
	vertexID := b.store.CreateVertex(center.X, center.Y)

	// The breakpoints own the half-edges of their left faces; the twins
	// bound the middle face. The middle face's ring runs leftOut →
	// rightOut through the vertex; the outer faces pick up one half of
	// the new down-going pair each.
	leftIn := b.edges[leftEdgeID].halfEdgeID
	leftOut := b.store.TwinID(leftIn)
	rightOut := b.edges[rightEdgeID].halfEdgeID
	rightIn := b.store.TwinID(rightOut)
	downFirst, downSecond := b.store.CreateHalfEdgePair(leftFaceID, rightFaceID)

	b.store.SetStart(leftIn, vertexID)
	b.store.SetStart(rightOut, vertexID)
	b.store.SetStart(downSecond, vertexID)
	b.store.Connect(downFirst, leftIn)
	b.store.Connect(leftOut, rightOut)
	b.store.Connect(rightIn, downSecond)

	if b.edges[leftEdgeID].right == arcRef(arcID) {
		// the left breakpoint is the arc's parent and disappears
		sibling := b.edges[leftEdgeID].left
		parent := b.edges[leftEdgeID].parent
		if parent == none {
			panic("voronoi: converging breakpoint cannot be the root")
		}
		b.replaceChild(parent, edgeRef(leftEdgeID), sibling)
		b.edges[rightEdgeID].halfEdgeID = downFirst
	} else {
		// the right breakpoint is the arc's parent and disappears
		sibling := b.edges[rightEdgeID].right
		parent := b.edges[rightEdgeID].parent
		if parent == none {
			panic("voronoi: converging breakpoint cannot be the root")
		}
		b.replaceChild(parent, edgeRef(rightEdgeID), sibling)
		b.edges[leftEdgeID].halfEdgeID = downFirst
	}

	b.arcs[arcID].pendingEvent = none
	b.updateRemoveEvent(leftArcID, sweepY)
	b.updateRemoveEvent(rightArcID, sweepY)
}

// updateRemoveEvent recomputes the circle event of arcID at sweep
// height sweepY, replacing any pending one. The arc is scheduled for
// removal only when it has neighbors on both sides, the neighboring
// breakpoints actually converge — the three foci make a clockwise
// turn — the circumcircle bottom c.y − r lies at or below the sweep,
// and the prospective vertex stays inside the rectangle's y range.
// Without the convergence test a freshly collapsed triple reschedules
// itself at the same priority and spawns a duplicate vertex.
func (b *Builder) updateRemoveEvent(arcID int, sweepY float64) {
	b.arcs[arcID].pendingEvent = none

	leftEdgeID, okL := b.findPrevEdgeID(arcID)
	if !okL {
		return
	}
	rightEdgeID, okR := b.findNextEdgeID(arcID)
	if !okR {
		return
	}
	focus := b.arcFocus(arcID)
	leftFocus := b.arcFocus(b.findPrevArcID(leftEdgeID))
	rightFocus := b.arcFocus(b.findNextArcID(rightEdgeID))
	if !geom.IsClockwise(focus.Sub(leftFocus), rightFocus.Sub(focus)) {
		return // breakpoints diverge; the arc is not being squeezed
	}
	center, radius, ok := b.sect.CircleThrough(leftFocus, focus, rightFocus)
	if !ok {
		return
	}
	priority := center.Y - radius
	if priority <= sweepY && center.Y >= 0 && center.Y <= b.height {
		id := b.pushEvent(&event{priority: priority, kind: circleEvent, arcID: arcID})
		b.arcs[arcID].pendingEvent = id
	}
}
