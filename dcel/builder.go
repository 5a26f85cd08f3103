package dcel

import "fmt"

// halfEdgeRecord is the mutable construction form of a HalfEdge;
// unset references hold None until wired.
type halfEdgeRecord struct {
	faceID  int
	startID int
	twinID  int
	prevID  int
	nextID  int
}

// faceRecord is the mutable construction form of a Face. edgeID is the
// eventual ring entry; openStartID/openEndID track the two boundary
// half-edges still needing closure against the bounding rectangle.
type faceRecord struct {
	x, y        float64
	edgeID      int
	openStartID int
	openEndID   int
}

// Builder owns the growing arenas during construction. It is not safe
// for concurrent use; the sweep owns exactly one.
type Builder struct {
	vertices  []Vertex
	halfEdges []halfEdgeRecord
	faces     []faceRecord
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// AddFace appends a face seeded at (x, y) and returns its id.
func (b *Builder) AddFace(x, y float64) int {
	id := len(b.faces)
	b.faces = append(b.faces, faceRecord{
		x: x, y: y,
		edgeID:      None,
		openStartID: None,
		openEndID:   None,
	})

	return id
}

// FaceCount returns the number of faces added so far.
func (b *Builder) FaceCount() int { return len(b.faces) }

// VertexCount returns the number of vertices created so far.
func (b *Builder) VertexCount() int { return len(b.vertices) }

// HalfEdgeCount returns the number of half-edges created so far.
func (b *Builder) HalfEdgeCount() int { return len(b.halfEdges) }

// FaceSite returns the seed point of a face.
func (b *Builder) FaceSite(faceID int) (x, y float64) {
	f := &b.faces[faceID]

	return f.x, f.y
}

// CreateVertex appends a vertex at (x, y) and returns its id.
func (b *Builder) CreateVertex(x, y float64) int {
	id := len(b.vertices)
	b.vertices = append(b.vertices, Vertex{ID: id, X: x, Y: y})

	return id
}

// VertexPosition returns the coordinates of a vertex.
func (b *Builder) VertexPosition(vertexID int) (x, y float64) {
	v := &b.vertices[vertexID]

	return v.X, v.Y
}

// CreateHalfEdge appends a half-edge on faceID with the given start
// vertex (which may be None) and returns its id. Twin, prev and next
// are left unset.
func (b *Builder) CreateHalfEdge(faceID, startID int) int {
	id := len(b.halfEdges)
	b.halfEdges = append(b.halfEdges, halfEdgeRecord{
		faceID:  faceID,
		startID: startID,
		twinID:  None,
		prevID:  None,
		nextID:  None,
	})

	return id
}

// CreateHalfEdgePair appends two mutually twinned half-edges, one per
// face, with no endpoints yet.
func (b *Builder) CreateHalfEdgePair(faceID, twinFaceID int) (first, twin int) {
	first = b.CreateHalfEdge(faceID, None)
	twin = b.CreateHalfEdge(twinFaceID, None)
	b.halfEdges[first].twinID = twin
	b.halfEdges[twin].twinID = first

	return first, twin
}

// Connect wires second after first in their shared face ring:
// next(first) = second and prev(second) = first. Both links must be
// previously unset and the faces must match.
func (b *Builder) Connect(first, second int) {
	f, s := &b.halfEdges[first], &b.halfEdges[second]
	if f.faceID != s.faceID {
		panic(fmt.Sprintf("dcel: connecting half-edges %d and %d across faces %d and %d",
			first, second, f.faceID, s.faceID))
	}
	if f.nextID != None {
		panic(fmt.Sprintf("dcel: half-edge %d is already connected forward", first))
	}
	if s.prevID != None {
		panic(fmt.Sprintf("dcel: half-edge %d is already connected backward", second))
	}
	f.nextID = second
	s.prevID = first
}

// Start returns the start vertex of a half-edge, or None.
func (b *Builder) Start(halfEdgeID int) int { return b.halfEdges[halfEdgeID].startID }

// SetStart assigns the start vertex of a half-edge; the start must be
// previously unset.
func (b *Builder) SetStart(halfEdgeID, vertexID int) {
	he := &b.halfEdges[halfEdgeID]
	if he.startID != None {
		panic(fmt.Sprintf("dcel: half-edge %d already has start vertex %d", halfEdgeID, he.startID))
	}
	he.startID = vertexID
}

// FaceID returns the face a half-edge bounds.
func (b *Builder) FaceID(halfEdgeID int) int { return b.halfEdges[halfEdgeID].faceID }

// TwinID returns the twin of a half-edge, or None.
func (b *Builder) TwinID(halfEdgeID int) int { return b.halfEdges[halfEdgeID].twinID }

// NoteFaceEdge records halfEdgeID as the face's ring entry if the face
// does not have one yet.
func (b *Builder) NoteFaceEdge(faceID, halfEdgeID int) {
	if b.faces[faceID].edgeID == None {
		b.faces[faceID].edgeID = halfEdgeID
	}
}

// SetOpenStart records the face's outgoing boundary half-edge for the
// border walk.
func (b *Builder) SetOpenStart(faceID, halfEdgeID int) {
	b.faces[faceID].openStartID = halfEdgeID
}

// SetOpenEnd records the face's incoming boundary half-edge for the
// border walk.
func (b *Builder) SetOpenEnd(faceID, halfEdgeID int) {
	b.faces[faceID].openEndID = halfEdgeID
}

// OpenStart returns the face's outgoing boundary half-edge, or None.
func (b *Builder) OpenStart(faceID int) int { return b.faces[faceID].openStartID }

// OpenEnd returns the face's incoming boundary half-edge, or None.
func (b *Builder) OpenEnd(faceID int) int { return b.faces[faceID].openEndID }

// HasOpenBounds reports whether the face still has boundary half-edges
// waiting to be closed against the rectangle.
func (b *Builder) HasOpenBounds(faceID int) bool {
	f := &b.faces[faceID]

	return f.openStartID != None || f.openEndID != None
}

// Finalize checks that construction completed and moves the arenas
// into immutable records. A half-edge with a missing start, prev or
// next is a bug in the caller and panics. The Builder must not be used
// afterwards.
func (b *Builder) Finalize() ([]Vertex, []HalfEdge, []Face) {
	halfEdges := make([]HalfEdge, len(b.halfEdges))
	for id, he := range b.halfEdges {
		if he.startID == None {
			panic(fmt.Sprintf("dcel: half-edge %d has no start vertex", id))
		}
		if he.prevID == None || he.nextID == None {
			panic(fmt.Sprintf("dcel: half-edge %d is not fully connected", id))
		}
		halfEdges[id] = HalfEdge{
			ID:      id,
			FaceID:  he.faceID,
			StartID: he.startID,
			TwinID:  he.twinID,
			PrevID:  he.prevID,
			NextID:  he.nextID,
		}
	}

	faces := make([]Face, len(b.faces))
	for id, f := range b.faces {
		if f.edgeID == None {
			panic(fmt.Sprintf("dcel: face %d has no boundary half-edge", id))
		}
		faces[id] = Face{ID: id, X: f.x, Y: f.y, StartID: f.edgeID}
	}

	vertices := b.vertices
	b.vertices, b.halfEdges, b.faces = nil, nil, nil
	if vertices == nil {
		vertices = []Vertex{}
	}

	return vertices, halfEdges, faces
}
