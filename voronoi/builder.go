package voronoi

import (
	"github.com/katalvlaran/fortune/dcel"
	"github.com/katalvlaran/fortune/geom"
)

// Builder accumulates sites and runs the sweep. Create one with
// NewBuilder, add sites with AddSite, then call Build. After Build the
// Builder is reset and may be reused for a fresh diagram; the returned
// Diagram stands alone.
type Builder struct {
	width, height float64

	store    *dcel.Builder
	events   eventQueue
	eventSeq int
	arcs     []arc
	edges    []breakpoint
	root     nodeRef
	sect     *geom.Intersector

	sites   map[geom.Vec2]struct{}
	siteYs  map[float64]struct{}
}

// NewBuilder creates a Builder for the rectangle [0,0]–(width, height).
// Non-positive dimensions yield ErrBadDimensions.
func NewBuilder(width, height float64) (*Builder, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	b := &Builder{width: width, height: height, sect: geom.NewIntersector()}
	b.reset()

	return b, nil
}

// Width returns the bounding rectangle width.
func (b *Builder) Width() float64 { return b.width }

// Height returns the bounding rectangle height.
func (b *Builder) Height() float64 { return b.height }

// AddSite registers a site. Sites must lie strictly inside the
// bounding rectangle, must be pairwise distinct, and no two sites may
// share a y coordinate (the beachline descent relies on distinct site
// heights). Validation is eager so a bad site never reaches the sweep.
func (b *Builder) AddSite(x, y float64) error {
	if x <= 0 || x >= b.width || y <= 0 || y >= b.height {
		return ErrSiteOutOfBounds
	}
	p := geom.V2(x, y)
	if _, dup := b.sites[p]; dup {
		return ErrDuplicateSite
	}
	if _, dup := b.siteYs[y]; dup {
		return ErrDuplicateSiteY
	}
	b.sites[p] = struct{}{}
	b.siteYs[y] = struct{}{}
	b.store.AddFace(x, y)

	return nil
}

// SiteCount returns the number of sites registered since the last
// Build.
func (b *Builder) SiteCount() int { return b.store.FaceCount() }

// Build runs the sweep over the registered sites and returns the
// finished Diagram. The event queue is seeded with one site event per
// site; events are then processed in descending priority, mutating the
// beachline and the DCEL; finally open edges are clipped against the
// rectangle and open faces are closed along its border. The Builder's
// scratch state is cleared before returning.
func (b *Builder) Build() *Diagram {
	b.seedSiteEvents()
	b.processEvents()
	b.completeEdges()
	b.bound()

	vertices, halfEdges, faces := b.store.Finalize()
	d := &Diagram{
		width:     b.width,
		height:    b.height,
		vertices:  vertices,
		halfEdges: halfEdges,
		faces:     faces,
	}
	b.reset()

	return d
}

// seedSiteEvents schedules one site event per face, keyed by the
// site's y: the sweepline descends from high y toward low y.
func (b *Builder) seedSiteEvents() {
	for faceID := 0; faceID < b.store.FaceCount(); faceID++ {
		_, y := b.store.FaceSite(faceID)
		b.pushEvent(&event{priority: y, kind: siteEvent, faceID: faceID})
	}
}

// processEvents drains the queue. Site events always insert an arc;
// circle events fire only while still valid — the popped id must match
// the arc's pending event id, otherwise the event is stale and dropped
// without side effects.
func (b *Builder) processEvents() {
	for b.events.Len() > 0 {
		ev := b.popEvent()
		switch ev.kind {
		case siteEvent:
			b.addArc(ev.faceID)
		case circleEvent:
			if b.arcs[ev.arcID].pendingEvent == ev.id {
				b.removeArc(ev.arcID, ev.priority)
			}
		}
	}
}

// reset clears all sweep scratch state, keeping only the rectangle.
func (b *Builder) reset() {
	b.store = dcel.NewBuilder()
	b.events = nil
	b.eventSeq = 0
	b.arcs = nil
	b.edges = nil
	b.root = nodeRef{}
	b.sites = make(map[geom.Vec2]struct{})
	b.siteYs = make(map[float64]struct{})
}
