package voronoi

// CreateTriangles converts the diagram into a triangle fan per face
// for rendering. The vertex buffer holds 3 float32 components per
// point, normalized from [0,width]×[0,height] into [−1,1]² with z = 0:
// first the face-center (site) vertices, then the boundary vertices in
// arena order. The index buffer emits, for each face, one triangle
// (face, start(cur), start(next)) per ring step from the face's start
// half-edge to the penultimate one, plus a final triangle closing the
// fan. CreateTriangles is pure: calling it twice yields identical
// buffers.
func (d *Diagram) CreateTriangles() ([]float32, []uint32) {
	scaleX := d.width / 2
	scaleY := d.height / 2

	vertices := make([]float32, 0, (len(d.faces)+len(d.vertices))*3)
	for _, f := range d.faces {
		vertices = append(vertices, float32(f.X/scaleX-1), float32(f.Y/scaleY-1), 0)
	}
	for _, v := range d.vertices {
		vertices = append(vertices, float32(v.X/scaleX-1), float32(v.Y/scaleY-1), 0)
	}

	// Boundary vertices sit after the face centers in the buffer.
	offset := len(d.faces)
	indices := make([]uint32, 0, len(d.halfEdges)*3)
	for id, f := range d.faces {
		cur := f.StartID
		for {
			next := d.halfEdges[cur].NextID
			if next == f.StartID {
				break
			}
			indices = append(indices,
				uint32(id),
				uint32(offset+d.halfEdges[cur].StartID),
				uint32(offset+d.halfEdges[next].StartID),
			)
			cur = next
		}
		indices = append(indices,
			uint32(id),
			uint32(offset+d.halfEdges[cur].StartID),
			uint32(offset+d.halfEdges[f.StartID].StartID),
		)
	}

	return vertices, indices
}
