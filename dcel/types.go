package dcel

// None marks an absent id reference, e.g. the twin of a bounding
// half-edge that has no mirror face.
const None = -1

// Vertex is an immutable point of the subdivision.
type Vertex struct {
	ID   int
	X, Y float64
}

// HalfEdge is an immutable directed edge. StartID is its origin
// vertex; NextID/PrevID close the cyclic ring around FaceID. TwinID is
// None only for bounding segments of the single-face degenerate case
// and for border segments emitted by face closure.
type HalfEdge struct {
	ID      int
	FaceID  int
	StartID int
	TwinID  int
	PrevID  int
	NextID  int
}

// Face is an immutable cell. (X, Y) is the site that seeded it and
// StartID some half-edge on its boundary ring.
type Face struct {
	ID   int
	X, Y float64
	StartID int
}
