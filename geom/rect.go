package geom

// Rect is an axis-aligned rectangle stored as its four corners in the
// fixed order top-left, top-right, bottom-right, bottom-left, where
// "top" is the side with the smaller y. Side i runs from corner i to
// corner (i+1)%4, so the side order is top, right, bottom, left — the
// order RayRect probes.
type Rect struct {
	corners [4]Vec2
}

// NewRect builds the rectangle spanning the given x and y extents; the
// arguments may come in either order per axis.
func NewRect(x1, x2, y1, y2 float64) Rect {
	left, right := x1, x2
	if left > right {
		left, right = right, left
	}
	top, bottom := y1, y2
	if top > bottom {
		top, bottom = bottom, top
	}

	return Rect{corners: [4]Vec2{
		{left, top},
		{right, top},
		{right, bottom},
		{left, bottom},
	}}
}

// Corner returns corner i in the fixed top-left, top-right,
// bottom-right, bottom-left order.
func (r Rect) Corner(i int) Vec2 { return r.corners[i] }
