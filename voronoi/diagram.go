package voronoi

import (
	"fmt"
	"io"

	"github.com/katalvlaran/fortune/dcel"
)

// Diagram is the finished planar subdivision: the bounding rectangle
// plus the immutable vertex, half-edge and face arenas produced by the
// sweep. A Diagram is safe to share between goroutines; nothing
// mutates it after Build returns.
type Diagram struct {
	width, height float64
	vertices      []dcel.Vertex
	halfEdges     []dcel.HalfEdge
	faces         []dcel.Face
}

// Width returns the bounding rectangle width.
func (d *Diagram) Width() float64 { return d.width }

// Height returns the bounding rectangle height.
func (d *Diagram) Height() float64 { return d.height }

// Vertices returns the vertex arena. The slice is shared; callers must
// treat it as read-only.
func (d *Diagram) Vertices() []dcel.Vertex { return d.vertices }

// HalfEdges returns the half-edge arena. The slice is shared; callers
// must treat it as read-only.
func (d *Diagram) HalfEdges() []dcel.HalfEdge { return d.halfEdges }

// Faces returns the face arena. The slice is shared; callers must
// treat it as read-only.
func (d *Diagram) Faces() []dcel.Face { return d.faces }

// Display writes a human-readable dump of the diagram: each face with
// its site, followed by its ring of half-edges with their start and
// end vertices and their twin (or "none").
func (d *Diagram) Display(w io.Writer) error {
	for id := range d.faces {
		if err := d.displayFace(w, id); err != nil {
			return err
		}
	}

	return nil
}

// displayFace dumps one face and its boundary ring.
func (d *Diagram) displayFace(w io.Writer, faceID int) error {
	face := &d.faces[faceID]
	if _, err := fmt.Fprintf(w, "Face %d\nsite: (%v, %v)\nbounds:\n", faceID, face.X, face.Y); err != nil {
		return err
	}
	cur := face.StartID
	for {
		if err := d.displayHalfEdge(w, cur); err != nil {
			return err
		}
		cur = d.halfEdges[cur].NextID
		if cur == face.StartID {
			break
		}
	}
	_, err := fmt.Fprintln(w)

	return err
}

// displayHalfEdge dumps one half-edge with its endpoints and twin.
func (d *Diagram) displayHalfEdge(w io.Writer, halfEdgeID int) error {
	he := &d.halfEdges[halfEdgeID]
	if _, err := fmt.Fprintf(w, "Half edge %d\n", halfEdgeID); err != nil {
		return err
	}
	start := d.vertices[he.StartID]
	end := d.vertices[d.halfEdges[he.NextID].StartID]
	if _, err := fmt.Fprintf(w, "start: (%v, %v)\nend: (%v, %v)\n", start.X, start.Y, end.X, end.Y); err != nil {
		return err
	}
	if he.TwinID == dcel.None {
		_, err := fmt.Fprintln(w, "twin: none")

		return err
	}
	_, err := fmt.Fprintf(w, "twin: %d\n", he.TwinID)

	return err
}
